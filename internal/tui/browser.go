package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maartenv/kampeer/internal/api"
)

// browserView is the screen the browser is currently showing
type browserView int

const (
	viewLoading browserView = iota
	viewList
	viewDetail
	viewError
)

// Messages delivered by the fetch commands.
type (
	spotsLoadedMsg   struct{ spots []api.Spot }
	ratingsLoadedMsg struct{ ratings []api.Rating }
	fetchFailedMsg   struct{ err error }
)

// browserKeys defines the keyboard shortcuts
type browserKeys struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var defaultBrowserKeys = browserKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Browser is the interactive spot browser model.
type Browser struct {
	client *api.Client

	view    browserView
	spots   []api.Spot
	ratings []api.Rating
	cursor  int
	err     error

	spinner spinner.Model
	keys    browserKeys
	styles  Styles
	width   int
	height  int
}

// NewBrowser creates a spot browser over the given API client.
func NewBrowser(client *api.Client) Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Browser{
		client:  client,
		view:    viewLoading,
		spinner: sp,
		keys:    defaultBrowserKeys,
		styles:  DefaultStyles(),
	}
}

// Init starts the spinner and the initial fetch (required by Bubble Tea)
func (b Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.fetchSpots())
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case spotsLoadedMsg:
		b.spots = msg.spots
		b.view = viewList
		if b.cursor >= len(b.spots) {
			b.cursor = 0
		}
		return b, nil

	case ratingsLoadedMsg:
		b.ratings = msg.ratings
		return b, nil

	case fetchFailedMsg:
		b.err = msg.err
		b.view = viewError
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.view == viewList && b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(msg, b.keys.Down):
		if b.view == viewList && b.cursor < len(b.spots)-1 {
			b.cursor++
		}

	case key.Matches(msg, b.keys.Enter):
		if b.view == viewList && len(b.spots) > 0 {
			b.view = viewDetail
			b.ratings = nil
			return b, b.fetchRatings(b.spots[b.cursor].ID)
		}

	case key.Matches(msg, b.keys.Back):
		if b.view == viewDetail {
			b.view = viewList
		}

	case key.Matches(msg, b.keys.Reload):
		if b.view == viewList || b.view == viewError {
			b.view = viewLoading
			return b, tea.Batch(b.spinner.Tick, b.fetchSpots())
		}
	}

	return b, nil
}

// View renders the current screen (required by Bubble Tea)
func (b Browser) View() string {
	switch b.view {
	case viewLoading:
		return fmt.Sprintf("\n  %s Loading spots...\n", b.spinner.View())
	case viewDetail:
		return b.renderDetail()
	case viewError:
		return b.renderError()
	default:
		return b.renderList()
	}
}

func (b Browser) renderList() string {
	var sb strings.Builder

	sb.WriteString(b.styles.Title.Render("Camping spots"))
	sb.WriteString("\n")

	if len(b.spots) == 0 {
		sb.WriteString(b.styles.Muted.Render("No spots available yet."))
		sb.WriteString("\n")
	}

	for i, spot := range b.spots {
		line := fmt.Sprintf("%s  %s  %s",
			spot.Title,
			b.styles.Muted.Render(spot.Location),
			b.styles.Price.Render(fmt.Sprintf("€%.2f/night", spot.Price)),
		)
		if spot.AverageRating != nil {
			line += "  " + b.styles.Rating.Render(fmt.Sprintf("★ %.1f (%d)", *spot.AverageRating, spot.TotalRatings))
		}

		if i == b.cursor {
			sb.WriteString(b.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(b.styles.Help.Render("↑/↓ navigate · enter details · r reload · q quit"))
	return sb.String()
}

func (b Browser) renderDetail() string {
	spot := b.spots[b.cursor]

	var sb strings.Builder
	sb.WriteString(b.styles.Title.Render(spot.Title))
	sb.WriteString("\n")
	sb.WriteString(b.styles.Subtitle.Render(spot.Location))
	sb.WriteString("\n\n")
	sb.WriteString(spot.Description)
	sb.WriteString("\n\n")
	sb.WriteString(b.styles.Price.Render(fmt.Sprintf("€%.2f per night", spot.Price)))
	sb.WriteString("\n")
	if spot.Owner != nil {
		sb.WriteString(b.styles.Muted.Render("Hosted by " + spot.Owner.Name))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if len(b.ratings) == 0 {
		sb.WriteString(b.styles.Muted.Render("No reviews yet."))
		sb.WriteString("\n")
	}
	for _, r := range b.ratings {
		sb.WriteString(b.styles.Rating.Render(strings.Repeat("★", r.Rating)))
		if r.User != nil {
			sb.WriteString(b.styles.Muted.Render("  " + r.User.Name))
		}
		sb.WriteString("\n")
		if r.Comment != "" {
			sb.WriteString("  " + r.Comment + "\n")
		}
	}

	sb.WriteString(b.styles.Help.Render("esc back · q quit"))
	return b.styles.Border.Render(sb.String())
}

func (b Browser) renderError() string {
	var sb strings.Builder
	sb.WriteString(b.styles.Error.Render("Failed to load spots"))
	sb.WriteString("\n")
	if b.err != nil {
		sb.WriteString(b.err.Error())
		sb.WriteString("\n")
	}
	sb.WriteString(b.styles.Help.Render("r retry · q quit"))
	return sb.String()
}

func (b Browser) fetchSpots() tea.Cmd {
	return func() tea.Msg {
		spots, err := b.client.ListSpots(context.Background())
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return spotsLoadedMsg{spots: spots}
	}
}

func (b Browser) fetchRatings(spotID string) tea.Cmd {
	return func() tea.Msg {
		ratings, err := b.client.SpotRatings(context.Background(), spotID)
		if err != nil {
			// Reviews are decoration on the detail view; show the spot anyway.
			return ratingsLoadedMsg{ratings: nil}
		}
		return ratingsLoadedMsg{ratings: ratings}
	}
}
