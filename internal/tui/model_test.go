package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/domain"
	"docsum/internal/highlight"
)

type fakeService struct {
	results []domain.Result
	err     error
	queries []string
}

func (f *fakeService) Query(query string) ([]domain.Result, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func typeQuery(t *testing.T, m tea.Model, q string) tea.Model {
	t.Helper()
	for _, r := range q {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestModel_QueryShowsResults(t *testing.T) {
	svc := &fakeService{results: []domain.Result{
		{Document: domain.Document{Path: "/tmp/a.txt"}, Summary: "great [[HIGHLIGHT]]pizza[[ENDHIGHLIGHT]]."},
		{Document: domain.Document{Path: "/tmp/b.txt"}},
	}}
	var m tea.Model = New(svc, highlight.New("", "", nil), 2)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m = typeQuery(t, m, "pizza")

	require.Equal(t, []string{"pizza"}, svc.queries)
	model := m.(Model)
	assert.Equal(t, `Summaries for "pizza"`, model.status)
	assert.Contains(t, model.renderCurrentResult(), "Document 1/2  a.txt")
	assert.Contains(t, model.renderCurrentResult(), "pizza")
	assert.NotContains(t, model.renderCurrentResult(), "[[HIGHLIGHT]]")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.(Model).renderCurrentResult(), "(no paragraph long enough to summarize)")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.(Model).cursor)
}

func TestModel_QueryError(t *testing.T) {
	svc := &fakeService{err: errors.New("boom")}
	var m tea.Model = New(svc, highlight.New("", "", nil), 0)

	m = typeQuery(t, m, "pizza")

	assert.Equal(t, "Error: boom", m.(Model).status)
	assert.Equal(t, "No summary yet.", m.(Model).renderCurrentResult())
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(&fakeService{}, highlight.New("", "", nil), 1)

	assert.Equal(t, "Loading...", m.View())
	assert.Contains(t, m.status, "Loaded 1 document(s)")
}

func TestModel_Quit(t *testing.T) {
	m := New(&fakeService{}, highlight.New("", "", nil), 1)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderSpans(t *testing.T) {
	got := renderSpans([]highlight.Span{{Text: "a "}, {Text: "b", Marked: true}})

	assert.Contains(t, got, "a ")
	assert.Contains(t, got, "b")
}
