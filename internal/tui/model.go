package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docsum/internal/domain"
	"docsum/internal/highlight"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Query(query string) ([]domain.Result, error)
}

// SpanSplitter turns a tagged summary back into plain and marked pieces.
type SpanSplitter interface {
	Spans(highlighted string) []highlight.Span
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  SummaryPort
	spans    SpanSplitter
	input    textinput.Model
	viewport viewport.Model
	results  []domain.Result
	loaded   int
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model instance over loaded documents.
func New(service SummaryPort, spans SpanSplitter, loaded int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		spans:    spans,
		input:    ti,
		viewport: vp,
		loaded:   loaded,
		status:   fmt.Sprintf("Loaded %d document(s). Type a query.", loaded),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentResult())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				res, err := m.service.Query(q)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.results = nil
				} else {
					m.status = fmt.Sprintf("Summaries for %q", q)
					m.results = res
					m.cursor = 0
				}
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Document Summary")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderCurrentResult() string {
	if len(m.results) == 0 {
		return "No summary yet."
	}
	r := m.results[m.cursor]
	title := fmt.Sprintf("Document %d/%d  %s", m.cursor+1, len(m.results), filepath.Base(r.Document.Path))
	if r.Summary == "" {
		return title + "\n\n" + emptyStyle.Render("(no paragraph long enough to summarize)")
	}
	return title + "\n\n" + renderSpans(m.spans.Spans(r.Summary))
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderSpans(spans []highlight.Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Marked {
			b.WriteString(highlightStyle.Render(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
