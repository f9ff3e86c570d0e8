package domain

// DeckSlotFields names the deck columns that carry a card as a JSON-encoded
// string. Eight magic slots and three companion slots; a deck row may omit
// any of them.
var DeckSlotFields = []string{
	"magicCardOne",
	"magicCardTwo",
	"magicCardThree",
	"magicCardFour",
	"magicCardFive",
	"magicCardSix",
	"magicCardSeven",
	"magicCardEight",
	"companionCardOne",
	"companionCardTwo",
	"companionCardThree",
}

// PageLimits is the closed set of accepted page sizes for list endpoints.
var PageLimits = []int{0, 25, 50, 75, 100}

// ValidPageLimit reports whether n is an accepted page size.
func ValidPageLimit(n int) bool {
	for _, l := range PageLimits {
		if n == l {
			return true
		}
	}
	return false
}

// Durations is the closed set of accepted deck-list lookback windows, in days.
var Durations = []int{1, 7, 31, 365}

// ValidDuration reports whether n is an accepted lookback window.
func ValidDuration(n int) bool {
	for _, d := range Durations {
		if n == d {
			return true
		}
	}
	return false
}
