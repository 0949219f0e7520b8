package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andriikh/ecomgen/internal/domain"
)

const descriptionPreview = 150

// Model is the Bubble Tea model for the catalog chat demo.
type Model struct {
	service  *Service
	input    textinput.Model
	viewport viewport.Model
	status   string
	summary  string
	ready    bool
}

// New creates the chat model. summary is shown under the header, e.g. how
// many products were loaded or a warning that the catalog is missing.
func New(service *Service, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about products, e.g. \"headphones under $200\""
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := "Type a query and press Enter."
	if service.Empty() {
		status = "No product data loaded. Run the generator first."
	}
	return Model{service: service, input: ti, viewport: vp, summary: summary, status: status}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header+summary, status, query box, spacer
		vh := msg.Height - reserved - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.String() == "esc" {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			query := strings.TrimSpace(m.input.Value())
			if query != "" {
				results := m.service.Search(query)
				m.viewport.SetContent(renderResults(results))
				if len(results) == 0 {
					m.status = fmt.Sprintf("Nothing found for %q. Try another query.", query)
				} else {
					m.status = fmt.Sprintf("Found %d products for %q.", len(results), query)
				}
				m.input.SetValue("")
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("E-commerce Chat Demo")
	summary := summaryStyle.Render(m.summary)
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

func renderResults(products []domain.Product) string {
	if len(products) == 0 {
		return "No matches."
	}
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		desc := p.Description
		if runes := []rune(desc); len(runes) > descriptionPreview {
			desc = string(runes[:descriptionPreview]) + "..."
		}
		name := nameStyle.Render(p.Name)
		meta := metaStyle.Render(fmt.Sprintf("(%s) - $%.2f", p.Category, p.FinalPrice))
		blocks = append(blocks, name+" "+meta+"\n  "+desc)
	}
	return strings.Join(blocks, "\n\n")
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	nameStyle      = lipgloss.NewStyle().Bold(true)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
