package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRarity(t *testing.T) {
	t.Parallel()

	for _, r := range Rarities {
		assert.True(t, ValidRarity(string(r)), "expected %s to be valid", r)
	}
	assert.False(t, ValidRarity("common"), "rarity matching is case sensitive")
	assert.False(t, ValidRarity("Ultra"))
	assert.False(t, ValidRarity(""))
}

func TestValidCardType(t *testing.T) {
	t.Parallel()

	for _, ct := range CardTypes {
		assert.True(t, ValidCardType(string(ct)), "expected %s to be valid", ct)
	}
	assert.False(t, ValidCardType("Trap"))
	assert.False(t, ValidCardType(""))
}

func TestValidPageLimit(t *testing.T) {
	t.Parallel()

	for _, l := range []int{0, 25, 50, 75, 100} {
		assert.True(t, ValidPageLimit(l), "expected %d to be accepted", l)
	}
	for _, l := range []int{10, -1, 200, 1, 99} {
		assert.False(t, ValidPageLimit(l), "expected %d to be rejected", l)
	}
}

func TestValidDuration(t *testing.T) {
	t.Parallel()

	for _, d := range []int{1, 7, 31, 365} {
		assert.True(t, ValidDuration(d), "expected %d to be accepted", d)
	}
	for _, d := range []int{0, 30, 366, -7} {
		assert.False(t, ValidDuration(d), "expected %d to be rejected", d)
	}
}
