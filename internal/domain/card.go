// Package domain defines the enumerated card-game values shared across the
// validation layer and the request handlers. The entities themselves (cards,
// decks, categories, tags, echoes, profiles) live in the database and are
// handled as opaque rows; only the closed value sets the gateway must enforce
// are modeled here.
package domain

// Rarity is the printed rarity of a card.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityDark      Rarity = "Dark"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Rarities lists every valid rarity.
var Rarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityDark,
	RarityLegendary,
	RarityMythic,
}

// ValidRarity reports whether s names a known rarity.
func ValidRarity(s string) bool {
	for _, r := range Rarities {
		if string(r) == s {
			return true
		}
	}
	return false
}

// CardType is the gameplay classification of a card.
type CardType string

const (
	TypeMagic     CardType = "Magic"
	TypeCompanion CardType = "Companion"
	TypeSummon    CardType = "Summon"
	TypeSpell     CardType = "Spell"
)

// CardTypes lists every valid card type.
var CardTypes = []CardType{
	TypeMagic,
	TypeCompanion,
	TypeSummon,
	TypeSpell,
}

// ValidCardType reports whether s names a known card type.
func ValidCardType(s string) bool {
	for _, t := range CardTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}
