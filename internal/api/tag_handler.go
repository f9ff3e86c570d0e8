package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/store"
	"github.com/deckforge/deckforge-api/internal/validation"
)

// TagHandler handles tag-related HTTP requests.
type TagHandler struct {
	runner store.ProcedureRunner
	logger *slog.Logger
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(runner store.ProcedureRunner, logger *slog.Logger) *TagHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TagHandler")
	}
	return &TagHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "tag_handler")),
	}
}

// List handles GET /tag/list.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.Query(r.Context(), "spTag_List", auth0Param(r))
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, listBody(result.Set(0)))
}

// Get handles GET /tag/{tagId}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "tagId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spTag_Get",
		auth0Param(r),
		store.Int("TagId", params["tagId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	tag := result.First()
	if tag == nil {
		respondNotFound(w, r, "Tag not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tag)
}
