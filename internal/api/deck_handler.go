package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/domain"
	"github.com/deckforge/deckforge-api/internal/moderation"
	"github.com/deckforge/deckforge-api/internal/store"
	"github.com/deckforge/deckforge-api/internal/validation"
)

// DeckHandler handles deck, deck-card, and vote HTTP requests.
type DeckHandler struct {
	runner store.ProcedureRunner
	logger *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(runner store.ProcedureRunner, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}
	return &DeckHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "deck_handler")),
	}
}

// pageFields is the shared pagination rule pair used by every deck list.
var pageFields = []validation.Field{
	{Name: "page", In: validation.Query, Required: true, Numeric: true},
	{
		Name: "limit", In: validation.Query, Required: true, Numeric: true,
		Check: validation.IntCheck(domain.ValidPageLimit), CheckMsg: "limit is invalid",
	},
}

// List handles GET /deck/list.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	fields := append([]validation.Field{
		{
			Name: "duration", In: validation.Query, Numeric: true,
			Check: validation.IntCheck(domain.ValidDuration), CheckMsg: "duration is invalid",
		},
		{Name: "costLow", In: validation.Query, Numeric: true},
		{Name: "costHigh", In: validation.Query, Numeric: true},
		{Name: "tagId", In: validation.Query, Numeric: true},
	}, pageFields...)

	params, errs := validation.Params(r, fields...)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spDeck_List",
		auth0Param(r),
		store.Int("Page", params["page"]),
		store.Int("Limit", params["limit"]),
		store.Int("Duration", optional(params, "duration")),
		store.Int("CostLow", optional(params, "costLow")),
		store.Int("CostHigh", optional(params, "costHigh")),
		store.Int("TagId", optional(params, "tagId")),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	body, err := paginatedDecks(result)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, body)
}

// Get handles GET /deck/{deckId}. The deck's card slot fields arrive as
// JSON-encoded strings and are decoded before the row is returned.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "deckId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spDeck_Get",
		auth0Param(r),
		store.Int("deckId", params["deckId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	deck := result.First()
	if deck == nil {
		respondNotFound(w, r, "Deck not found")
		return
	}

	parsed, err := parseDeckRow(deck)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, parsed)
}

// UserList handles GET /deck/user/{userId}/list: public, paginated decks of
// one user.
func (h *DeckHandler) UserList(w http.ResponseWriter, r *http.Request) {
	fields := append([]validation.Field{
		{Name: "userId", In: validation.Path, Required: true, Numeric: true},
	}, pageFields...)

	params, errs := validation.Params(r, fields...)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spDeck_List",
		auth0Param(r),
		store.Int("Page", params["page"]),
		store.Int("Limit", params["limit"]),
		store.Int("SearchUserId", params["userId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	body, err := paginatedDecks(result)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, body)
}

// ProfileList handles GET /deck/profile/list: the calling user's own decks.
func (h *DeckHandler) ProfileList(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r, pageFields...)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spProfile_DeckList",
		auth0Param(r),
		store.Int("Page", params["page"]),
		store.Int("Limit", params["limit"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	body, err := paginatedDecks(result)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, body)
}

// deckRequest is the body for deck creation and update: a name, the
// classification ids, and the full eleven card slots.
type deckRequest struct {
	Name                 string `json:"name"                 validate:"required"`
	TagID                int    `json:"tagId"                validate:"required,gt=0"`
	EchoID               int    `json:"echoId"               validate:"required,gt=0"`
	Description          string `json:"description"          validate:"required"`
	MagicCardOneID       int    `json:"magicCardOneId"       validate:"required,gt=0"`
	MagicCardTwoID       int    `json:"magicCardTwoId"       validate:"required,gt=0"`
	MagicCardThreeID     int    `json:"magicCardThreeId"     validate:"required,gt=0"`
	MagicCardFourID      int    `json:"magicCardFourId"      validate:"required,gt=0"`
	MagicCardFiveID      int    `json:"magicCardFiveId"      validate:"required,gt=0"`
	MagicCardSixID       int    `json:"magicCardSixId"       validate:"required,gt=0"`
	MagicCardSevenID     int    `json:"magicCardSevenId"     validate:"required,gt=0"`
	MagicCardEightID     int    `json:"magicCardEightId"     validate:"required,gt=0"`
	CompanionCardOneID   int    `json:"companionCardOneId"   validate:"required,gt=0"`
	CompanionCardTwoID   int    `json:"companionCardTwoId"   validate:"required,gt=0"`
	CompanionCardThreeID int    `json:"companionCardThreeId" validate:"required,gt=0"`
}

// contentParams builds the procedure parameters shared by spDeck_Add and
// spDeck_Update, in signature order.
func (req *deckRequest) contentParams() []store.Param {
	return []store.Param{
		store.Text("Name", req.Name),
		store.Int("TagId", req.TagID),
		store.Int("EchoId", req.EchoID),
		store.Text("Description", req.Description),
		store.Int("MagicCardOneId", req.MagicCardOneID),
		store.Int("MagicCardTwoId", req.MagicCardTwoID),
		store.Int("MagicCardThreeId", req.MagicCardThreeID),
		store.Int("MagicCardFourId", req.MagicCardFourID),
		store.Int("MagicCardFiveId", req.MagicCardFiveID),
		store.Int("MagicCardSixId", req.MagicCardSixID),
		store.Int("MagicCardSevenId", req.MagicCardSevenID),
		store.Int("MagicCardEightId", req.MagicCardEightID),
		store.Int("CompanionCardOneId", req.CompanionCardOneID),
		store.Int("CompanionCardTwoId", req.CompanionCardTwoID),
		store.Int("CompanionCardThreeId", req.CompanionCardThreeID),
	}
}

// Create handles POST /deck.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondValidation(w, r, shared.ValidationErrors(err))
		return
	}

	if moderation.IsTextExplicit(req.Name) || moderation.IsTextExplicit(req.Description) {
		respondValidation(w, r, []string{"Name / Description must not include profanity"})
		return
	}

	params := append([]store.Param{auth0Param(r)}, req.contentParams()...)
	success, err := h.runner.Exec(r.Context(), "spDeck_Add", params...)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}

// Update handles PUT /deck/{deckId}.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	pathParams, errs := validation.Params(r,
		validation.Field{Name: "deckId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	var req deckRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondValidation(w, r, shared.ValidationErrors(err))
		return
	}

	if moderation.IsTextExplicit(req.Name) || moderation.IsTextExplicit(req.Description) {
		respondValidation(w, r, []string{"Name / Description must not include profanity"})
		return
	}

	params := append([]store.Param{
		auth0Param(r),
		store.Int("DeckId", pathParams["deckId"]),
	}, req.contentParams()...)
	success, err := h.runner.Exec(r.Context(), "spDeck_Update", params...)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}

// Delete handles DELETE /deck/{deckId}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "deckId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	success, err := h.runner.Exec(r.Context(), "spDeck_Remove",
		auth0Param(r),
		store.Int("DeckId", params["deckId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}

// deckCardRequest is the body for adding a card to a deck. Position is a
// pointer so slot 0 still satisfies the required check.
type deckCardRequest struct {
	CardID   int  `json:"cardId"   validate:"required,gt=0"`
	Position *int `json:"position" validate:"required,gte=0"`
}

// AddCard handles POST /deck/{deckId}/card.
func (h *DeckHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "deckId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	var req deckCardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondValidation(w, r, shared.ValidationErrors(err))
		return
	}

	success, err := h.runner.Exec(r.Context(), "spDeckCard_Add",
		auth0Param(r),
		store.Int("DeckId", params["deckId"]),
		store.Int("CardId", req.CardID),
		store.Int("Position", *req.Position),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}

// UpdateCard handles PUT /deck/card/{deckCardId}.
func (h *DeckHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "deckCardId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	var req struct {
		CardID int `json:"cardId" validate:"required,gt=0"`
	}
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondValidation(w, r, shared.ValidationErrors(err))
		return
	}

	success, err := h.runner.Exec(r.Context(), "spDeckCard_Update",
		auth0Param(r),
		store.Int("DeckCardId", params["deckCardId"]),
		store.Int("CardId", req.CardID),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}

// RemoveCard handles DELETE /deck/card/{deckCardId}.
func (h *DeckHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "deckCardId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	success, err := h.runner.Exec(r.Context(), "spDeckCard_Remove",
		auth0Param(r),
		store.Int("DeckCardId", params["deckCardId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}

// AddVote handles POST /deck/{deckId}/vote.
func (h *DeckHandler) AddVote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, "spVote_Add")
}

// RemoveVote handles DELETE /deck/{deckId}/vote.
func (h *DeckHandler) RemoveVote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, "spVote_Remove")
}

func (h *DeckHandler) vote(w http.ResponseWriter, r *http.Request, proc string) {
	params, errs := validation.Params(r,
		validation.Field{Name: "deckId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	success, err := h.runner.Exec(r.Context(), proc,
		auth0Param(r),
		store.Int("DeckId", params["deckId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}
