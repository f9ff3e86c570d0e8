package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/domain"
	"github.com/deckforge/deckforge-api/internal/store"
	"github.com/deckforge/deckforge-api/internal/validation"
)

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	runner store.ProcedureRunner
	logger *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(runner store.ProcedureRunner, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}
	return &CardHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "card_handler")),
	}
}

// List handles GET /card/list. All filters are optional.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "rarity", In: validation.Query, Check: domain.ValidRarity, CheckMsg: "rarity is invalid"},
		validation.Field{Name: "cost", In: validation.Query, Numeric: true},
		validation.Field{Name: "type", In: validation.Query, Check: domain.ValidCardType, CheckMsg: "type is invalid"},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spCard_List",
		auth0Param(r),
		store.BigInt("Cost", optional(params, "cost")),
		store.Text("RarityName", optional(params, "rarity")),
		store.Text("TypeName", optional(params, "type")),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listBody(result.Set(0)))
}

// Get handles GET /card/{cardId}. Row-set 0 carries the card, row-set 1 its
// type tags; a missing card is a 404, missing tags become an empty array.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "cardId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spCard_Get",
		auth0Param(r),
		store.BigInt("CardId", params["cardId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	card := result.First()
	if card == nil {
		respondNotFound(w, r, "Card not found")
		return
	}

	body := make(map[string]any, len(card)+1)
	for key, value := range card {
		body[key] = value
	}
	body["types"] = listBody(result.Set(1))
	shared.RespondWithJSON(w, r, http.StatusOK, body)
}
