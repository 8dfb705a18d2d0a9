package shipping

import (
	"errors"
	"fmt"
	"math"
)

// Tier is the heaviest shipment, in kilograms, a product accepts.
type Tier struct {
	MaxKG   float64 `yaml:"max_kg" json:"max_kg"`
	Product string  `yaml:"product" json:"product"`
}

func DefaultTiers() []Tier {
	return []Tier{
		{MaxKG: 10, Product: "Pakket tot 10 kg"},
		{MaxKG: 30, Product: "Pakket tot 30 kg"},
		{MaxKG: 60, Product: "Zending tot 60 kg"},
		{MaxKG: 150, Product: "Zending tot 150 kg"},
		{MaxKG: 500, Product: "Pallet tot 500 kg"},
		{MaxKG: 1000, Product: "Pallet tot 1000 kg"},
	}
}

// ValidateTiers requires a non-empty table in strictly ascending order.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return errors.New("product tier table is empty")
	}
	for i, tier := range tiers {
		if tier.Product == "" {
			return fmt.Errorf("tier %d has no product name", i)
		}
		if tier.MaxKG <= 0 {
			return fmt.Errorf("tier %d (%s) must have a positive max_kg", i, tier.Product)
		}
		if i > 0 && tier.MaxKG <= tiers[i-1].MaxKG {
			return fmt.Errorf("tier %d (%s) is not above the previous limit of %g kg", i, tier.Product, tiers[i-1].MaxKG)
		}
	}
	return nil
}

// WeightKG rounds a weight in grams to whole kilograms, halves to even.
func WeightKG(grams int) float64 {
	return math.RoundToEven(float64(grams) / 1000)
}

// SelectProduct returns the first tier that fits grams, or "" when the
// shipment is heavier than every tier.
func SelectProduct(tiers []Tier, grams int) string {
	kg := WeightKG(grams)
	for _, tier := range tiers {
		if tier.MaxKG >= kg {
			return tier.Product
		}
	}
	return ""
}
