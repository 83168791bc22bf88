package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ontograph/pkg/graph"
	"github.com/matzehuels/ontograph/pkg/ontology"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	detailStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginLeft(1)
)

const (
	defaultListHeight = 15
	maxPropertyWidth  = 48
)

// =============================================================================
// BrowseModel - interactive node browser
// =============================================================================

// BrowseModel is the bubbletea model for browsing a graph's nodes. Tab cycles
// through the categories present in the graph; enter toggles the property
// pane for the selected node.
type BrowseModel struct {
	Graph      graph.Graph
	Categories []string // "" first, meaning all
	CatIndex   int
	Visible    []graph.Node
	Cursor     int
	Offset     int
	Height     int
	ShowDetail bool
}

// NewBrowseModel creates a browser over every node of g.
func NewBrowseModel(g graph.Graph) BrowseModel {
	m := BrowseModel{
		Graph:      g,
		Categories: append([]string{""}, presentCategories(g)...),
		Height:     defaultListHeight,
		ShowDetail: true,
	}
	m.applyFilter()
	return m
}

// presentCategories returns the categories used by g's nodes, sorted.
func presentCategories(g graph.Graph) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range g.Nodes {
		if c := n.Data.Category; !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// Category returns the active category filter, "" for all.
func (m BrowseModel) Category() string {
	return m.Categories[m.CatIndex]
}

// Selected returns the node under the cursor.
func (m BrowseModel) Selected() (graph.Node, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Visible) {
		return graph.Node{}, false
	}
	return m.Visible[m.Cursor], true
}

func (m *BrowseModel) applyFilter() {
	cat := m.Category()
	m.Visible = m.Visible[:0:0]
	for _, n := range m.Graph.Nodes {
		if cat == "" || n.Data.Category == cat {
			m.Visible = append(m.Visible, n)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

func (m *BrowseModel) cycleCategory(step int) {
	n := len(m.Categories)
	m.CatIndex = ((m.CatIndex+step)%n + n) % n
	m.applyFilter()
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "tab":
			m.cycleCategory(1)
		case "shift+tab":
			m.cycleCategory(-1)
		case "enter":
			m.ShowDetail = !m.ShowDetail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	title := "All categories"
	if cat := m.Category(); cat != "" {
		title = swatch(ontology.ColorOf(cat)) + " " + ontology.FormatLabel(cat)
	}
	b.WriteString(StyleTitle.Render("Ontology") + "  " + title)
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab category  ⏎ details  q quit"))
	b.WriteString("\n\n")

	list := m.listView()
	if node, ok := m.Selected(); ok && m.ShowDetail {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detailStyle.Render(m.detailView(node))))
	} else {
		b.WriteString(list)
	}
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Visible)), len(m.Visible))))

	return b.String()
}

func (m BrowseModel) listView() string {
	end := min(m.Offset+m.Height, len(m.Visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Visible[i].Data
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, swatch(d.Color), d.Label, d.NodeType})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Node", "Type").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func (m BrowseModel) detailView(node graph.Node) string {
	d := node.Data
	var b strings.Builder

	b.WriteString(StyleTitle.Render(d.Label))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(d.ID))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("category"), ontology.FormatLabel(d.Category))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("incoming"), StyleNumber.Render(fmt.Sprint(len(m.Graph.Incoming(d.ID)))))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("outgoing"), StyleNumber.Render(fmt.Sprint(len(m.Graph.Outgoing(d.ID)))))

	if d.Properties.Len() > 0 {
		b.WriteString("\n")
	}
	d.Properties.Each(func(k string, v any) bool {
		fmt.Fprintf(&b, "%s %s\n", StyleHighlight.Render(k), StyleValue.Render(formatProperty(v)))
		return true
	})
	return strings.TrimRight(b.String(), "\n")
}

// formatProperty renders a property value on one line, truncated.
func formatProperty(v any) string {
	var s string
	if str, ok := v.(string); ok {
		s = str
	} else if out, err := json.Marshal(v); err == nil {
		s = string(out)
	} else {
		s = fmt.Sprint(v)
	}
	if r := []rune(s); len(r) > maxPropertyWidth {
		s = string(r[:maxPropertyWidth-1]) + "…"
	}
	return s
}
