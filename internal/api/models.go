package api

import (
	"encoding/json"
	"fmt"

	"github.com/deckforge/deckforge-api/internal/domain"
	"github.com/deckforge/deckforge-api/internal/store"
)

// parseDeckRow decodes the JSON-encoded card slot fields of a deck row in
// place. Missing or NULL slots stay absent; a present slot that does not
// deserialize fails the whole row rather than passing malformed data through.
func parseDeckRow(row store.Row) (store.Row, error) {
	for _, field := range domain.DeckSlotFields {
		raw, ok := row[field]
		if !ok || raw == nil {
			continue
		}
		encoded, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("deck slot %s: expected encoded string, got %T", field, raw)
		}
		var decoded any
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			return nil, fmt.Errorf("deck slot %s: %w", field, err)
		}
		row[field] = decoded
	}
	return row, nil
}

// parseDeckRows decodes every deck row of a row-set. A nil set yields an
// empty, non-nil slice so list responses always carry a JSON array.
func parseDeckRows(set store.RowSet) ([]store.Row, error) {
	rows := make([]store.Row, 0, len(set))
	for _, row := range set {
		parsed, err := parseDeckRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed)
	}
	return rows, nil
}

// paginatedDecks shapes a deck-list result: row-set 0 holds one row of
// pagination metadata which is merged into the top level, row-set 1 holds
// the deck rows under "data" (an empty array when the set is absent).
func paginatedDecks(result *store.Result) (map[string]any, error) {
	data, err := parseDeckRows(result.Set(1))
	if err != nil {
		return nil, err
	}

	body := make(map[string]any)
	for key, value := range result.First() {
		body[key] = value
	}
	body["data"] = data
	return body, nil
}

// listBody returns the row-set as a JSON array body, substituting an empty
// array for an absent set.
func listBody(set store.RowSet) []store.Row {
	if set == nil {
		return []store.Row{}
	}
	return set
}
