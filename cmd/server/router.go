package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deckforge/deckforge-api/internal/api"
	apiMiddleware "github.com/deckforge/deckforge-api/internal/api/middleware"
)

// setupRouter configures the route table. Identity is resolved passively on
// every route; RequireAuth gates only the routes that need a verified user.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.SecureHeaders)
	r.Use(apiMiddleware.Trace)

	identity := apiMiddleware.NewIdentityMiddleware(app.verifier)
	r.Use(identity.Resolve)

	cardHandler := api.NewCardHandler(app.runner, app.logger)
	categoryHandler := api.NewCategoryHandler(app.runner, app.logger)
	deckHandler := api.NewDeckHandler(app.runner, app.logger)
	echoHandler := api.NewEchoHandler(app.runner, app.logger)
	tagHandler := api.NewTagHandler(app.runner, app.logger)
	profileHandler := api.NewProfileHandler(app.runner, app.logger)
	userHandler := api.NewUserHandler(app.runner, app.config.Sync.Secret, app.logger)

	r.Route("/card", func(r chi.Router) {
		r.Get("/list", cardHandler.List)
		r.Get("/{cardId}", cardHandler.Get)
	})

	r.Route("/category", func(r chi.Router) {
		r.Get("/list", categoryHandler.List)
		r.Get("/{categoryId}", categoryHandler.Get)
	})

	r.Route("/deck", func(r chi.Router) {
		// Public reads
		r.Get("/list", deckHandler.List)
		r.Get("/user/{userId}/list", deckHandler.UserList)

		// Authenticated routes. Registered before the {deckId} wildcard so
		// /deck/profile/list is not captured by it.
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RequireAuth)
			r.Get("/profile/list", deckHandler.ProfileList)
			r.Post("/", deckHandler.Create)
			r.Put("/{deckId}", deckHandler.Update)
			r.Delete("/{deckId}", deckHandler.Delete)
			r.Post("/{deckId}/card", deckHandler.AddCard)
			r.Put("/card/{deckCardId}", deckHandler.UpdateCard)
			r.Delete("/card/{deckCardId}", deckHandler.RemoveCard)
			r.Post("/{deckId}/vote", deckHandler.AddVote)
			r.Delete("/{deckId}/vote", deckHandler.RemoveVote)
		})

		r.Get("/{deckId}", deckHandler.Get)
	})

	r.Route("/echo", func(r chi.Router) {
		r.Get("/list", echoHandler.List)
		r.Get("/{echoId}", echoHandler.Get)
	})

	r.Route("/tag", func(r chi.Router) {
		r.Get("/list", tagHandler.List)
		r.Get("/{tagId}", tagHandler.Get)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Use(apiMiddleware.RequireAuth)
		r.Get("/", profileHandler.Get)
		r.Put("/", profileHandler.Update)
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/sync", userHandler.Sync)
		r.Get("/{userId}", userHandler.Get)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
