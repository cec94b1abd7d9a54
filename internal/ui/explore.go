// Package ui implements the terminal viewer behind "rue explore": a
// scrollable, expandable list built by flattening a parsed tree into
// visible rows on the fly.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rue/internal/cst"
)

type treeRow struct {
	node     cst.Node
	depth    int
	hasKids  bool
	expanded bool
}

// TreeModel is a Bubble Tea model that lets a user walk a parsed
// concrete syntax tree with the arrow keys, collapsing and expanding
// subtrees with enter.
type TreeModel struct {
	root     cst.Node
	rows     []treeRow
	expanded map[*cst.Tree]bool
	cursor   int
	width    int
	height   int
}

// NewTreeModel builds a browsable view over tree, starting fully
// collapsed except for the root.
func NewTreeModel(tree *cst.Tree) *TreeModel {
	m := &TreeModel{
		root:     cst.Interior(tree),
		expanded: map[*cst.Tree]bool{tree: true},
		width:    80,
		height:   24,
	}
	m.rebuild()
	return m
}

func (m *TreeModel) Init() tea.Cmd { return nil }

func (m *TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.toggleCursor()
		}
	}
	return m, nil
}

func (m *TreeModel) View() string {
	var b strings.Builder
	kindStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tokenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	for i, row := range m.rows {
		line := renderRow(row, kindStyle, tokenStyle)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n↑/↓ move · enter toggle · q quit\n")
	return b.String()
}

func renderRow(row treeRow, kindStyle, tokenStyle lipgloss.Style) string {
	indent := strings.Repeat("  ", row.depth)
	marker := "  "
	if row.hasKids {
		if row.expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	if row.node.IsToken() {
		return fmt.Sprintf("%s%s%s", indent, marker, tokenStyle.Render(fmt.Sprintf("%s %q", row.node.Tok.Kind, row.node.Tok.Text)))
	}
	return fmt.Sprintf("%s%s%s", indent, marker, kindStyle.Render(row.node.Sub.Kind.String()))
}

func (m *TreeModel) toggleCursor() {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	if !row.hasKids {
		return
	}
	m.expanded[row.node.Sub] = !m.expanded[row.node.Sub]
	cursorNode := row.node
	m.rebuild()
	for i, r := range m.rows {
		if r.node.IsTree() && cursorNode.IsTree() && r.node.Sub == cursorNode.Sub {
			m.cursor = i
			break
		}
	}
}

func (m *TreeModel) rebuild() {
	m.rows = m.rows[:0]
	m.flatten(m.root, 0)
}

func (m *TreeModel) flatten(n cst.Node, depth int) {
	if n.IsToken() {
		m.rows = append(m.rows, treeRow{node: n, depth: depth})
		return
	}
	expanded := m.expanded[n.Sub]
	m.rows = append(m.rows, treeRow{node: n, depth: depth, hasKids: len(n.Sub.Children) > 0, expanded: expanded})
	if !expanded {
		return
	}
	for _, c := range n.Sub.Children {
		m.flatten(c, depth+1)
	}
}
