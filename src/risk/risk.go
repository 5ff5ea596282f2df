// Package risk classifies a gold price against currency-specific thresholds
// and produces templated advice. Assessment is a pure function of
// (price, currency).
package risk

import (
	"fmt"
	"math"
)

// Level is an ordered risk classification. Higher values mean a more
// expensive, riskier entry.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelModerateHigh
	LevelHigh
)

// String returns the wire representation of the level.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelModerate:
		return "moderate"
	case LevelModerateHigh:
		return "moderate-high"
	case LevelHigh:
		return "high"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as their
// string form in JSON payloads.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Thresholds are the bucket boundaries for one currency. Buckets are
// half-open: price < Low is low risk, Low <= price < Moderate is moderate,
// Moderate <= price < High is moderate-high, price >= High is high.
type Thresholds struct {
	Low      float64
	Moderate float64
	High     float64
}

// Assessment is the derived classification for a price point.
type Assessment struct {
	RiskLevel           Level  `json:"risk_level"`
	PriceClassification string `json:"price_classification"`
	Advice              string `json:"advice"`
}

// InvalidArgumentError reports a caller contract violation: a price that is
// not a finite number.
type InvalidArgumentError struct {
	Price float64
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid price: %v is not a finite number", e.Price)
}

// defaultThresholds holds approximate per-currency price boundaries for one
// troy ounce of gold. Unmapped currencies fall back to the USD entry.
var defaultThresholds = map[string]Thresholds{
	"USD": {Low: 2000, Moderate: 2300, High: 2500},
	"EUR": {Low: 1850, Moderate: 2150, High: 2350},
	"GBP": {Low: 1600, Moderate: 1850, High: 2100},
	"JPY": {Low: 300000, Moderate: 340000, High: 380000},
	"CAD": {Low: 2700, Moderate: 3100, High: 3500},
	"AUD": {Low: 3000, Moderate: 3500, High: 4000},
	"INR": {Low: 160000, Moderate: 190000, High: 220000},
	"CNY": {Low: 14000, Moderate: 16500, High: 19000},
	"SAR": {Low: 7500, Moderate: 8500, High: 9500},
	"AED": {Low: 7300, Moderate: 8300, High: 9300},
	"EGP": {Low: 95000, Moderate: 110000, High: 125000},
	"VND": {Low: 46000000, Moderate: 80000000, High: 100000000},
}

// ThresholdsFor returns the bucket boundaries for a currency, falling back to
// USD for unmapped currencies.
func ThresholdsFor(currency string) Thresholds {
	if t, ok := defaultThresholds[currency]; ok {
		return t
	}
	return defaultThresholds["USD"]
}

// Assess classifies price against the thresholds for currency. It has no
// side effects; the only failure mode is a non-finite price, which is an
// InvalidArgumentError.
func Assess(price float64, currency string) (Assessment, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Assessment{}, &InvalidArgumentError{Price: price}
	}

	thresh := ThresholdsFor(currency)

	switch {
	case price < thresh.Low:
		return Assessment{
			RiskLevel:           LevelLow,
			PriceClassification: "Undervalued",
			Advice:              fmt.Sprintf("Excellent buying opportunity! Gold is undervalued at %v %s. Consider accumulating positions while prices are low.", price, currency),
		}, nil
	case price < thresh.Moderate:
		return Assessment{
			RiskLevel:           LevelModerate,
			PriceClassification: "Fair Value",
			Advice:              fmt.Sprintf("Good entry point at %v %s. Moderate pricing with growth potential. Consider dollar-cost averaging for this market.", price, currency),
		}, nil
	case price < thresh.High:
		return Assessment{
			RiskLevel:           LevelModerateHigh,
			PriceClassification: "Fairly Valued",
			Advice:              fmt.Sprintf("Fair pricing at %v %s. Market is fairly valued. Consider smaller purchases or wait for pullbacks.", price, currency),
		}, nil
	default:
		return Assessment{
			RiskLevel:           LevelHigh,
			PriceClassification: "Premium/Overvalued",
			Advice:              fmt.Sprintf("Premium pricing at %v %s. Consider waiting for market corrections or focus on smaller strategic purchases.", price, currency),
		}, nil
	}
}
