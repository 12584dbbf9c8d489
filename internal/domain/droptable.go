package domain

import "math"

// DropRateSumTarget is the required sum of the weights of a drop-rate table.
const DropRateSumTarget = 100.0

// DropRateSumEpsilon is the tolerance applied when validating floating-point
// weight sums.
const DropRateSumEpsilon = 0.01

// DropTable maps each rarity tier to its probability weight for one pack
// type. Weights always sum to 100 within DropRateSumEpsilon.
type DropTable map[Rarity]float64

// PackType is the full product configuration of a purchasable pack: its cost
// in rubies, the fixed number of cards per pack, and the drop-rate table.
type PackType struct {
	Name      string    `json:"pack_type" db:"pack_type"`
	Cost      int64     `json:"cost" db:"cost"`
	CardCount int       `json:"card_count" db:"card_count"`
	Rates     DropTable `json:"rates" db:"rates"`
	Version   int       `json:"version" db:"version"`
}

// Sum returns the total weight of the table.
func (t DropTable) Sum() float64 {
	var sum float64
	for _, w := range t {
		sum += w
	}
	return sum
}

// Validate checks that every key is a known rarity, no weight is negative,
// and the weights sum to 100 within tolerance.
func (t DropTable) Validate() error {
	if len(t) == 0 {
		return ErrInvalidDropRates
	}
	for r, w := range t {
		if !r.Valid() || w < 0 {
			return ErrInvalidDropRates
		}
	}
	if math.Abs(t.Sum()-DropRateSumTarget) > DropRateSumEpsilon {
		return ErrInvalidDropRates
	}
	return nil
}

// Clone returns an independent copy of the table so callers can never mutate
// the stored configuration through a returned map.
func (t DropTable) Clone() DropTable {
	c := make(DropTable, len(t))
	for r, w := range t {
		c[r] = w
	}
	return c
}
