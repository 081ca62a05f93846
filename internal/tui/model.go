package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"countvec/internal/domain"
	"countvec/internal/vectorizer"
)

// CorpusPort is the TUI-facing subset of the vectorize service.
type CorpusPort interface {
	FeatureNames() []string
	Matrix() [][]int
	Documents() []domain.Document
	Similar(index int, topK int) ([]domain.SimilarResult, error)
}

// Model is the Bubble Tea model for browsing a fitted corpus.
type Model struct {
	service  CorpusPort
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model instance.
func New(service CorpusPort, stats []domain.TermStat) Model {
	ti := textinput.New()
	ti.Prompt = "term> "
	ti.Placeholder = "Type a term and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := fmt.Sprintf("%d documents, %d terms. Up/down to browse.", len(service.Documents()), len(service.FeatureNames()))
	return Model{service: service, input: ti, viewport: vp, summary: formatSummary(stats), status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, dh := documentBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-dh)
		m.viewport.SetContent(m.renderCurrentDocument())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		n := len(m.service.Documents())
		switch msg.String() {
		case "enter":
			m.status = m.lookupTerm(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "down":
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		case "up":
			if n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the selected document.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Count Vectorizer")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	doc := documentBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + doc + "\n" + input + "\n" + status
}

// Cursor returns the index of the selected document.
func (m Model) Cursor() int { return m.cursor }

// Status returns the current status line.
func (m Model) Status() string { return m.status }

func (m Model) renderCurrentDocument() string {
	docs := m.service.Documents()
	matrix := m.service.Matrix()
	if len(docs) == 0 || m.cursor >= len(matrix) {
		return "No documents."
	}
	d := docs[m.cursor]
	title := fmt.Sprintf("Document %d/%d  %s", m.cursor+1, len(docs), d.Path)

	names := m.service.FeatureNames()
	var counts []string
	for j, c := range matrix[m.cursor] {
		if c > 0 {
			counts = append(counts, termStyle.Render(names[j])+fmt.Sprintf("×%d", c))
		}
	}
	body := strings.TrimSpace(d.Content)
	if body == "" {
		body = "(no tokens)"
	}

	var b strings.Builder
	b.WriteString(title + "\n\n" + body + "\n\n")
	b.WriteString("counts: " + strings.Join(counts, " "))
	if sim, err := m.service.Similar(m.cursor, 3); err == nil && len(sim) > 0 {
		b.WriteString("\n\nsimilar:")
		for _, r := range sim {
			b.WriteString(fmt.Sprintf("\n  #%d %s  score=%.3f", r.Index+1, r.Document.Path, r.Score))
		}
	}
	return b.String()
}

func (m Model) lookupTerm(raw string) string {
	tokens := vectorizer.Tokenize(raw)
	if len(tokens) == 0 {
		return "Enter a term to look up."
	}
	term := tokens[0]
	names := m.service.FeatureNames()
	j := sort.SearchStrings(names, term)
	if j >= len(names) || names[j] != term {
		return fmt.Sprintf("%q is not in the vocabulary", term)
	}
	total, docs := 0, 0
	for _, row := range m.service.Matrix() {
		total += row[j]
		if row[j] > 0 {
			docs++
		}
	}
	return fmt.Sprintf("%q: column %d, %d occurrences in %d documents", term, j, total, docs)
}

func formatSummary(stats []domain.TermStat) string {
	if len(stats) == 0 {
		return "No terms."
	}
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = fmt.Sprintf("%s(%d)", s.Term, s.Total)
	}
	return "Top terms: " + strings.Join(parts, " ")
}

var (
	documentBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	termStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
