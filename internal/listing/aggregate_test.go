package listing_test

import (
	"math"
	"testing"

	"github.com/gloovup/portal/internal/listing"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	require.Equal(t, 67, listing.Percent(2, 3))
	require.Equal(t, 33, listing.Percent(1, 3))
	require.Equal(t, 0, listing.Percent(0, 0))
	require.Equal(t, 100, listing.Percent(1, 0))
	require.Equal(t, 50, listing.Percent(1, 2))
	require.Equal(t, 0, listing.Percent(-3, 4))
}

func TestBreakdownBy_TicketScenario(t *testing.T) {
	rows := []row{{Status: "Open"}, {Status: "Open"}, {Status: "Closed"}}

	b := listing.BreakdownBy(rows, func(r row) string { return r.Status }, "Open", "In Progress", "Review", "Closed")

	require.Equal(t, 3, b.Total)
	require.Equal(t, map[string]int{"Open": 2, "In Progress": 0, "Review": 0, "Closed": 1}, b.Counts)
	require.Equal(t, 67, b.Percentages["Open"])
	require.Equal(t, 33, b.Percentages["Closed"])
	require.Equal(t, 0, b.Percentages["Review"])
}

func TestBreakdownBy_Soundness(t *testing.T) {
	collections := [][]row{
		sampleRows(),
		{{Status: "A"}, {Status: "B"}, {Status: "C"}},
		{{Status: "A"}, {Status: "A"}, {Status: "A"}, {Status: "A"}, {Status: "B"}, {Status: "C"}, {Status: "C"}},
	}
	for _, rows := range collections {
		b := listing.BreakdownBy(rows, func(r row) string { return r.Status })

		sum, pctSum := 0, 0
		for value, n := range b.Counts {
			sum += n
			pct := b.Percentages[value]
			require.GreaterOrEqual(t, pct, 0)
			require.LessOrEqual(t, pct, 100)
			pctSum += pct
		}
		require.Equal(t, len(rows), sum)
		require.LessOrEqual(t, pctSum, 100+len(b.Counts)/2)
	}
}

func TestBreakdownBy_Empty(t *testing.T) {
	b := listing.BreakdownBy([]row{}, func(r row) string { return r.Status }, "Open", "Closed")

	require.Equal(t, 0, b.Total)
	require.Equal(t, map[string]int{"Open": 0, "Closed": 0}, b.Counts)
	require.Equal(t, map[string]int{"Open": 0, "Closed": 0}, b.Percentages)
}

func TestCountAndSum(t *testing.T) {
	rows := sampleRows()
	require.Equal(t, 2, listing.Count(rows, func(r row) bool { return r.Priority == "High" }))
	require.Equal(t, 22.0, listing.Sum(rows, func(r row) float64 { return float64(r.Days) }))
	require.Equal(t, 0.0, listing.Sum([]row{}, func(r row) float64 { return 1 }))
}

func TestRingFor(t *testing.T) {
	ring := listing.RingFor(75, 40, 4)

	require.Equal(t, 32.0, ring.NormalizedRadius)
	require.InDelta(t, 64*math.Pi, ring.Circumference, 1e-9)
	require.InDelta(t, 16*math.Pi, ring.DashOffset, 1e-9)

	full := listing.RingFor(150, 40, 4)
	require.Equal(t, 100, full.Percentage)
	require.InDelta(t, 0, full.DashOffset, 1e-9)
}
