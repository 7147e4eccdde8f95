package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maartenv/kampeer/internal/api"
)

func floatPtr(f float64) *float64 { return &f }

func TestRenderSpotsTable(t *testing.T) {
	spots := []api.Spot{
		{ID: "s1", Title: "Bosrand", Location: "Veluwe", Price: 25, AverageRating: floatPtr(4.5), TotalRatings: 12},
		{ID: "s2", Title: "Duinen", Location: "Texel", Price: 40},
	}

	out := RenderSpotsTable(spots)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Bosrand")
	assert.Contains(t, out, "€25.00")
	assert.Contains(t, out, "4.5 (12)")
	// Spots without ratings show a dash.
	assert.Contains(t, out, "-")
}

func TestRenderSpotsTable_Empty(t *testing.T) {
	out := RenderSpotsTable(nil)
	assert.Contains(t, out, "No spots found.")
}

func TestRenderBookingsTable(t *testing.T) {
	bookings := []api.Booking{
		{ID: "b1", SpotID: "s1", DateFrom: "2026-07-01", DateTo: "2026-07-05", Spot: &api.Spot{ID: "s1", Title: "Bosrand"}},
		{ID: "b2", SpotID: "s9", DateFrom: "2026-08-10", DateTo: "2026-08-12"},
	}

	out := RenderBookingsTable(bookings)
	assert.Contains(t, out, "Bosrand")
	// Falls back to the spot id when the record is not embedded.
	assert.Contains(t, out, "s9")
	assert.Contains(t, out, "2026-07-01")
}

func TestRenderBookingsTable_Empty(t *testing.T) {
	assert.Contains(t, RenderBookingsTable(nil), "No bookings found.")
}

func TestRenderRatingsTable(t *testing.T) {
	ratings := []api.Rating{
		{ID: "r1", Rating: 4, Comment: "Mooie plek", Spot: &api.Spot{Title: "Bosrand"}},
	}

	out := RenderRatingsTable(ratings)
	assert.Contains(t, out, "★★★★")
	assert.Contains(t, out, "Mooie plek")
	assert.Contains(t, out, "Bosrand")
}

func TestRenderDashboard(t *testing.T) {
	dash := &api.OwnerDashboard{
		TotalSpots:    3,
		TotalBookings: 17,
		TotalRevenue:  1250.50,
		RecentBookings: []api.Booking{
			{ID: "b1", SpotID: "s1", DateFrom: "2026-07-01", DateTo: "2026-07-05"},
		},
	}

	out := RenderDashboard(dash)
	assert.Contains(t, out, "Owner dashboard")
	assert.Contains(t, out, "Total Spots")
	assert.Contains(t, out, "Total Revenue")
	assert.Contains(t, out, "€1250.50")
	assert.Contains(t, out, "Recent bookings")
}

func TestRenderDashboard_NoRecentBookings(t *testing.T) {
	out := RenderDashboard(&api.OwnerDashboard{TotalSpots: 1})
	assert.NotContains(t, out, "Recent bookings")
}

func TestRenderTable_ColumnsAligned(t *testing.T) {
	rows := [][]string{
		{"ID", "TITLE"},
		{"s1", "Bosrand"},
		{"long-id-2", "X"},
	}

	out := renderTable(rows, DefaultStyles())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)

	// Every second column starts at the same offset.
	first := strings.Index(lines[1], "Bosrand")
	second := strings.Index(lines[2], "X")
	assert.Equal(t, first, second)
}
