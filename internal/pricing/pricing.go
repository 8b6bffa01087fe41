package pricing

import "math"

// Default billing rates: BigQuery active-storage monthly rate per GB,
// on-demand analysis rate per TB, and the USD to JPY conversion rate.
const (
	DefaultStorageUSDPerGB = 0.02
	DefaultQueryUSDPerTB   = 6.0
	DefaultUSDToJPY        = 150
)

// Rates holds the billing rates used to turn byte counts into costs.
type Rates struct {
	StorageUSDPerGB float64 // monthly, per GB stored
	QueryUSDPerTB   float64 // per TB of bytes processed
	USDToJPY        float64 // currency conversion rate
}

// DefaultRates returns the standard on-demand rates.
func DefaultRates() Rates {
	return Rates{
		StorageUSDPerGB: DefaultStorageUSDPerGB,
		QueryUSDPerTB:   DefaultQueryUSDPerTB,
		USDToJPY:        DefaultUSDToJPY,
	}
}

// StorageCost converts a stored byte count into size and monthly cost figures.
// Return values are unrounded; callers round at output time.
func (r Rates) StorageCost(sizeBytes int64) (gb, tb, usd, jpy float64) {
	gb = float64(sizeBytes) / (1024 * 1024 * 1024)
	tb = gb / 1024
	usd = gb * r.StorageUSDPerGB
	jpy = usd * r.USDToJPY
	return gb, tb, usd, jpy
}

// QueryCost converts a processed byte count into volume and cost figures.
// Return values are unrounded; callers round at output time.
func (r Rates) QueryCost(bytesProcessed int64) (tb, usd, jpy float64) {
	tb = float64(bytesProcessed) / (1024 * 1024 * 1024 * 1024)
	usd = tb * r.QueryUSDPerTB
	jpy = usd * r.USDToJPY
	return tb, usd, jpy
}

// RoundTo rounds v half away from zero to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
