package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tbonnin/calepin/pkg/calepinage"
	"github.com/tbonnin/calepin/pkg/plan"
)

// viewCommand creates the view command for interactive layout browsing.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [plan.toml]",
		Short: "Browse a computed layout interactively",
		Long: `Browse a computed layout interactively.

The view command computes the layout like 'plan' and opens a row browser:
one table row per deck row with its planks, total length, and seam offsets.
Move with the arrow keys or j/k, quit with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			heap, d, err := plan.Load(args[0])
			if err != nil {
				return err
			}
			layout, err := calepinage.Calepine(heap, d, calepinage.WithLogger(c.Logger))
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(NewLayoutModel(layout)).Run()
			return err
		},
	}
	return cmd
}

// deckRow is one row of the browser table.
type deckRow struct {
	line      string
	total     int
	junctions string
}

// LayoutModel is the bubbletea model for the layout row browser.
type LayoutModel struct {
	Rows   []deckRow
	Cursor int
}

// NewLayoutModel builds a browser model from a computed layout.
func NewLayoutModel(layout calepinage.Calepinage) LayoutModel {
	lines := layout.Lines()
	rows := make([]deckRow, len(lines))
	for i, l := range lines {
		rows[i] = deckRow{
			line:      l.String(),
			total:     l.TotalLength(),
			junctions: formatJunctions(l.Junctions()),
		}
	}
	return LayoutModel{Rows: rows}
}

func formatJunctions(junctions []calepinage.Junction) string {
	if len(junctions) == 0 {
		return "—"
	}
	parts := make([]string, len(junctions))
	for i, j := range junctions {
		parts[i] = strconv.Itoa(int(j))
	}
	return strings.Join(parts, ", ")
}

func (m LayoutModel) Init() tea.Cmd {
	return nil
}

func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m LayoutModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Deck Layout"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Rows))
	for i, r := range m.Rows {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, strconv.Itoa(i), r.line, strconv.Itoa(r.total), r.junctions}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Row", "Planks", "Length", "Seams").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
