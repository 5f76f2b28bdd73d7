package derived

import (
	"math"
	"strconv"

	"growlog/entities"
)

// NutrientUsagePerLiter is concentration over the log's reservoir water,
// rounded to 2 places. Nil when there is no reservoir log or no water.
func NutrientUsagePerLiter(concentration int, reservoir *entities.ReservoirLog) *float64 {
	if reservoir == nil || reservoir.Water == 0 {
		return nil
	}
	v := round2(float64(concentration) / float64(reservoir.Water))
	return &v
}

// round2 rounds on the exact binary value, so 1/40 (just above 0.025) goes
// up and 3/40 (just below 0.075) goes down.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

// PercentRoRatio is the share of reverse-osmosis water in the reservoir,
// as a whole percentage. Nil without an RO amount or with no water.
func PercentRoRatio(r *entities.ReservoirLog) *int {
	if r == nil || r.RoAmount == nil || r.Water == 0 {
		return nil
	}
	pct := int(math.RoundToEven(float64(*r.RoAmount) / float64(r.Water) * 100))
	return &pct
}
