package domain

// Rarity classifies an item template by desirability. The order of the tiers
// drives both roll probability and perceived value.
type Rarity string

const (
	RarityCommon Rarity = "COMMON"
	RarityRare   Rarity = "RARE"
	RaritySR     Rarity = "SR"
	RaritySSR    Rarity = "SSR"
	RarityUR     Rarity = "UR"
)

// Rarities lists all tiers in ascending order. Weighted rolls walk this slice
// in order, so the ordering here is load-bearing.
var Rarities = []Rarity{RarityCommon, RarityRare, RaritySR, RaritySSR, RarityUR}

// NotableRarity is the threshold at or above which a pull is celebrated in
// the UI (contains_rare_or_better on pack results).
const NotableRarity = RaritySSR

var rarityOrder = map[Rarity]int{
	RarityCommon: 0,
	RarityRare:   1,
	RaritySR:     2,
	RaritySSR:    3,
	RarityUR:     4,
}

// Order returns the tier's position in the ascending rarity ordering,
// or -1 for an unknown tier.
func (r Rarity) Order() int {
	if o, ok := rarityOrder[r]; ok {
		return o
	}
	return -1
}

// Valid reports whether the rarity is one of the known tiers.
func (r Rarity) Valid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// AtLeast reports whether r is at or above the given tier.
func (r Rarity) AtLeast(other Rarity) bool {
	return r.Order() >= other.Order()
}
