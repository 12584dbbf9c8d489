// Package rarity implements the weighted rarity roll used by pack opening.
package rarity

import "github.com/mangapulse/economy-engine/internal/domain"

// RandFunc supplies uniform values in [0, 1). Injected so callers can seed
// or fix the source in tests.
type RandFunc func() float64

// Roll draws one rarity tier from the table. The draw walks the tiers in
// ascending rarity order accumulating weights until the cumulative weight
// exceeds a uniform value in [0, 100). If floating-point rounding leaves the
// walk short of the draw, the lowest tier is returned; that case is
// statistically negligible and deliberately absorbed rather than surfaced.
func Roll(table domain.DropTable, rnd RandFunc) domain.Rarity {
	r := rnd() * domain.DropRateSumTarget

	var cumulative float64
	for _, tier := range domain.Rarities {
		cumulative += table[tier]
		if r < cumulative {
			return tier
		}
	}
	return domain.Rarities[0]
}

// RollMany draws n rarities from the same table.
func RollMany(table domain.DropTable, n int, rnd RandFunc) []domain.Rarity {
	out := make([]domain.Rarity, n)
	for i := range out {
		out[i] = Roll(table, rnd)
	}
	return out
}
