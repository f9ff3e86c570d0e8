package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/store"
	"github.com/deckforge/deckforge-api/internal/validation"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	runner store.ProcedureRunner
	logger *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(runner store.ProcedureRunner, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}
	return &CategoryHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /category/list.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.Query(r.Context(), "spCategory_List", auth0Param(r))
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, listBody(result.Set(0)))
}

// Get handles GET /category/{categoryId}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "categoryId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spCategory_Get",
		auth0Param(r),
		store.BigInt("CategoryId", params["categoryId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	category := result.First()
	if category == nil {
		respondNotFound(w, r, "Category not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, category)
}
