package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maartenv/kampeer/internal/api"
)

func loadedBrowser(t *testing.T, spots []api.Spot) Browser {
	t.Helper()

	b := NewBrowser(api.NewClient("http://localhost:3001/api"))
	model, _ := b.Update(spotsLoadedMsg{spots: spots})
	return model.(Browser)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowser_StartsLoading(t *testing.T) {
	b := NewBrowser(api.NewClient("http://localhost:3001/api"))
	assert.Equal(t, viewLoading, b.view)
	assert.Contains(t, b.View(), "Loading spots")
}

func TestBrowser_SpotsLoadedShowsList(t *testing.T) {
	b := loadedBrowser(t, []api.Spot{
		{ID: "s1", Title: "Bosrand", Location: "Veluwe", Price: 25},
		{ID: "s2", Title: "Duinen", Location: "Texel", Price: 40},
	})

	assert.Equal(t, viewList, b.view)
	out := b.View()
	assert.Contains(t, out, "Bosrand")
	assert.Contains(t, out, "Duinen")
}

func TestBrowser_FetchFailureShowsError(t *testing.T) {
	b := NewBrowser(api.NewClient("http://localhost:3001/api"))
	model, _ := b.Update(fetchFailedMsg{err: errors.New("connection refused")})
	b = model.(Browser)

	assert.Equal(t, viewError, b.view)
	assert.Contains(t, b.View(), "connection refused")
}

func TestBrowser_CursorMovement(t *testing.T) {
	b := loadedBrowser(t, []api.Spot{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}})

	model, _ := b.Update(keyMsg("j"))
	b = model.(Browser)
	assert.Equal(t, 1, b.cursor)

	model, _ = b.Update(keyMsg("j"))
	model, _ = model.(Browser).Update(keyMsg("j"))
	b = model.(Browser)
	// Cursor stops at the last spot.
	assert.Equal(t, 2, b.cursor)

	model, _ = b.Update(keyMsg("k"))
	b = model.(Browser)
	assert.Equal(t, 1, b.cursor)
}

func TestBrowser_CursorStaysAtTop(t *testing.T) {
	b := loadedBrowser(t, []api.Spot{{ID: "s1"}, {ID: "s2"}})

	model, _ := b.Update(keyMsg("k"))
	b = model.(Browser)
	assert.Equal(t, 0, b.cursor)
}

func TestBrowser_EnterOpensDetailAndFetchesRatings(t *testing.T) {
	b := loadedBrowser(t, []api.Spot{{ID: "s1", Title: "Bosrand", Description: "Aan de bosrand"}})

	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b = model.(Browser)

	assert.Equal(t, viewDetail, b.view)
	require.NotNil(t, cmd)
	assert.Contains(t, b.View(), "Bosrand")
}

func TestBrowser_EnterOnEmptyListDoesNothing(t *testing.T) {
	b := loadedBrowser(t, nil)

	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b = model.(Browser)

	assert.Equal(t, viewList, b.view)
	assert.Nil(t, cmd)
}

func TestBrowser_EscReturnsToList(t *testing.T) {
	b := loadedBrowser(t, []api.Spot{{ID: "s1", Title: "Bosrand"}})

	model, _ := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = model.(Browser).Update(tea.KeyMsg{Type: tea.KeyEsc})
	b = model.(Browser)

	assert.Equal(t, viewList, b.view)
}

func TestBrowser_ReloadFromError(t *testing.T) {
	b := NewBrowser(api.NewClient("http://localhost:3001/api"))
	model, _ := b.Update(fetchFailedMsg{err: errors.New("boom")})
	model, cmd := model.(Browser).Update(keyMsg("r"))
	b = model.(Browser)

	assert.Equal(t, viewLoading, b.view)
	assert.NotNil(t, cmd)
}

func TestBrowser_QuitKey(t *testing.T) {
	b := loadedBrowser(t, nil)

	_, cmd := b.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowser_RatingsLoadedShownInDetail(t *testing.T) {
	b := loadedBrowser(t, []api.Spot{{ID: "s1", Title: "Bosrand"}})

	model, _ := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = model.(Browser).Update(ratingsLoadedMsg{ratings: []api.Rating{
		{ID: "r1", Rating: 5, Comment: "Top plek", User: &api.SpotOwner{Name: "Sanne"}},
	}})
	b = model.(Browser)

	out := b.View()
	assert.Contains(t, out, "★★★★★")
	assert.Contains(t, out, "Top plek")
	assert.Contains(t, out, "Sanne")
}
