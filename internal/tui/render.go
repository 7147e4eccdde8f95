package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maartenv/kampeer/internal/api"
)

// RenderSpotsTable formats spot listings as an aligned table.
func RenderSpotsTable(spots []api.Spot) string {
	styles := DefaultStyles()
	if len(spots) == 0 {
		return styles.Muted.Render("No spots found.")
	}

	rows := [][]string{{"ID", "TITLE", "LOCATION", "PRICE", "RATING"}}
	for _, spot := range spots {
		rating := "-"
		if spot.AverageRating != nil {
			rating = fmt.Sprintf("%.1f (%d)", *spot.AverageRating, spot.TotalRatings)
		}
		rows = append(rows, []string{
			spot.ID,
			spot.Title,
			spot.Location,
			fmt.Sprintf("€%.2f", spot.Price),
			rating,
		})
	}
	return renderTable(rows, styles)
}

// RenderBookingsTable formats bookings as an aligned table.
func RenderBookingsTable(bookings []api.Booking) string {
	styles := DefaultStyles()
	if len(bookings) == 0 {
		return styles.Muted.Render("No bookings found.")
	}

	rows := [][]string{{"ID", "SPOT", "FROM", "TO"}}
	for _, b := range bookings {
		spot := b.SpotID
		if b.Spot != nil {
			spot = b.Spot.Title
		}
		rows = append(rows, []string{b.ID, spot, b.DateFrom, b.DateTo})
	}
	return renderTable(rows, styles)
}

// RenderRatingsTable formats ratings as an aligned table.
func RenderRatingsTable(ratings []api.Rating) string {
	styles := DefaultStyles()
	if len(ratings) == 0 {
		return styles.Muted.Render("No ratings found.")
	}

	rows := [][]string{{"ID", "SPOT", "RATING", "COMMENT"}}
	for _, r := range ratings {
		spot := "-"
		if r.Spot != nil {
			spot = r.Spot.Title
		}
		rows = append(rows, []string{r.ID, spot, strings.Repeat("★", r.Rating), r.Comment})
	}
	return renderTable(rows, styles)
}

// RenderDashboard formats the owner revenue dashboard.
func RenderDashboard(dash *api.OwnerDashboard) string {
	styles := DefaultStyles()

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox(styles, "Total Spots", fmt.Sprintf("%d", dash.TotalSpots)),
		statBox(styles, "Total Bookings", fmt.Sprintf("%d", dash.TotalBookings)),
		statBox(styles, "Total Revenue", fmt.Sprintf("€%.2f", dash.TotalRevenue)),
	)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Owner dashboard"))
	sb.WriteString("\n")
	sb.WriteString(stats)
	sb.WriteString("\n")

	if len(dash.RecentBookings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Recent bookings"))
		sb.WriteString("\n")
		sb.WriteString(RenderBookingsTable(dash.RecentBookings))
	}
	return sb.String()
}

func statBox(styles Styles, label, value string) string {
	content := styles.Price.Render(value) + "\n" + styles.Muted.Render(label)
	return styles.Border.Render(content)
}

// renderTable column-aligns rows, styling the first row as a header.
func renderTable(rows [][]string, styles Styles) string {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for ri, row := range rows {
		for ci, cell := range row {
			padded := cell + strings.Repeat(" ", widths[ci]-lipgloss.Width(cell))
			if ri == 0 {
				sb.WriteString(styles.TableHeader.Render(padded))
			} else {
				sb.WriteString(styles.TableCell.Render(padded))
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
