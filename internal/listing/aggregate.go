package listing

import (
	"math"

	"github.com/samber/lo"
)

// Percent returns count as a whole percentage of total, clamped to [0, 100].
// A total below one is treated as one so empty collections report 0.
func Percent(count, total int) int {
	if total < 1 {
		total = 1
	}
	p := int(math.Round(float64(count) / float64(total) * 100))
	return min(max(p, 0), 100)
}

// Breakdown is a per-value count of one field with matching percentages.
type Breakdown struct {
	Total       int            `json:"total"`
	Counts      map[string]int `json:"counts"`
	Percentages map[string]int `json:"percentages"`
}

// BreakdownBy counts items by key. Every value listed in values appears in
// the result even when no item carries it.
func BreakdownBy[T any](items []T, key func(T) string, values ...string) Breakdown {
	counts := lo.CountValuesBy(items, key)
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			counts[v] = 0
		}
	}
	percentages := make(map[string]int, len(counts))
	for value, n := range counts {
		percentages[value] = Percent(n, len(items))
	}
	return Breakdown{Total: len(items), Counts: counts, Percentages: percentages}
}

// Count returns the number of items matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	return lo.CountBy(items, pred)
}

// Sum adds f over items.
func Sum[T any](items []T, f func(T) float64) float64 {
	return lo.SumBy(items, f)
}

// Ring is the geometry of a circular progress indicator.
type Ring struct {
	Percentage       int     `json:"percentage"`
	NormalizedRadius float64 `json:"normalized_radius"`
	Circumference    float64 `json:"circumference"`
	DashOffset       float64 `json:"dash_offset"`
}

// RingFor lays out a progress ring of the given outer radius and stroke width.
func RingFor(percentage int, radius, stroke float64) Ring {
	percentage = min(max(percentage, 0), 100)
	normalized := math.Max(radius-stroke*2, 0)
	circumference := normalized * 2 * math.Pi
	return Ring{
		Percentage:       percentage,
		NormalizedRadius: normalized,
		Circumference:    circumference,
		DashOffset:       circumference - float64(percentage)/100*circumference,
	}
}
