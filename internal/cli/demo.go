package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/observability"
	"github.com/rikardjonsson/pylon/pkg/persist"
	"github.com/rikardjonsson/pylon/pkg/widget"
)

// demoCommand runs the interactive terminal grid.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive terminal grid",
		Long: `Demo opens a terminal grid where widgets can be added, moved cell by
cell, removed, and compacted. Moves that would collide or leave the grid are
rejected in place, mirroring the placement engine's behavior. Changes are
autosaved to the configured storage backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			var saver *persist.Autosaver
			if cfg.Autosave.Enabled {
				saver = persist.NewAutosaver(p, cfg.AutosaveDelay(), c.Logger)
				defer func() {
					saver.Flush()
					saver.Stop()
				}()
			}

			det := grid.NewRectDetector()
			m := grid.NewManager(cfg.GridConfig(), grid.NewTetrisEngine(det), det)
			m.SetOnChange(func(ch grid.Change) {
				observability.Grid().OnChange(string(ch.Kind), ch.ItemID)
			})
			model := newDemoModel(m, p, saver)

			program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = program.Run()
			return err
		},
	}
}

// =============================================================================
// DemoModel
// =============================================================================

// Grid cell styles.
var (
	demoEmptyStyle    = lipgloss.NewStyle().Foreground(colorDim)
	demoWidgetStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	demoSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	demoBlockedStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// demoRows is how many rows of an unbounded grid the demo draws past the
// lowest occupied cell.
const demoRows = 6

// demoModel is the bubbletea model for the interactive grid.
type demoModel struct {
	manager  *grid.Manager
	persist  *persist.Persister
	saver    *persist.Autosaver
	selected int // index into manager.Items()
	status   string
	nextCat  int
	quitting bool
}

func newDemoModel(m *grid.Manager, p *persist.Persister, saver *persist.Autosaver) demoModel {
	return demoModel{manager: m, persist: p, saver: saver, status: "a add  ·  arrows move  ·  d delete  ·  c compact  ·  s save  ·  q quit"}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "a":
		cat := widget.Categories[m.nextCat%len(widget.Categories)]
		m.nextCat++
		w := widget.New(titleCase(string(cat)), cat)
		if !m.manager.Add(w) {
			m.status = demoBlockedStyle.Render("grid is full")
			return m, nil
		}
		m.selected = m.manager.Len() - 1
		m.status = fmt.Sprintf("added %s at %s", w.Title, w.Position())
		m.autosave()

	case "d":
		if it, ok := m.selectedItem(); ok {
			m.manager.Remove(it.ID())
			if m.selected >= m.manager.Len() {
				m.selected = m.manager.Len() - 1
			}
			m.status = "removed widget"
			m.autosave()
		}

	case "tab":
		if m.manager.Len() > 0 {
			m.selected = (m.selected + 1) % m.manager.Len()
		}

	case "c":
		m.manager.Optimize()
		m.status = "compacted"
		m.autosave()

	case "s":
		if _, err := m.persist.Save(context.Background(), m.manager, "Demo"); err != nil {
			m.status = demoBlockedStyle.Render("save failed: " + err.Error())
		} else {
			m.status = "saved layout \"Demo\""
		}

	case "up":
		m.move(-1, 0)
	case "down":
		m.move(1, 0)
	case "left":
		m.move(0, -1)
	case "right":
		m.move(0, 1)
	}

	return m, nil
}

// move shifts the selected widget by one cell, reporting collisions and
// bounds rejections in the status line.
func (m *demoModel) move(dr, dc int) {
	it, ok := m.selectedItem()
	if !ok {
		return
	}
	target := it.Position().Offset(dr, dc)
	if m.manager.Move(it.ID(), target) {
		m.status = fmt.Sprintf("moved to %s", target)
		m.autosave()
		return
	}
	m.status = demoBlockedStyle.Render(fmt.Sprintf("blocked at %s", target))
}

func (m *demoModel) selectedItem() (grid.Item, bool) {
	items := m.manager.Items()
	if m.selected < 0 || m.selected >= len(items) {
		return nil, false
	}
	return items[m.selected], true
}

func (m *demoModel) autosave() {
	if m.saver != nil {
		m.saver.Request(m.manager)
	}
}

func (m demoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Pylon Grid"))
	b.WriteString("\n\n")

	items := m.manager.Items()
	var selectedID string
	if it, ok := m.selectedItem(); ok {
		selectedID = it.ID()
	}

	// Map occupied cells to the item covering them.
	owner := make(map[grid.Coordinate]int)
	for i, it := range items {
		for _, cell := range it.Footprint().Cells(it.Position()) {
			owner[cell] = i
		}
	}

	cfg := m.manager.Config()
	rows := cfg.Bounds.Rows
	if !cfg.Bounds.RowBounded() {
		rows = m.manager.Occupied().MaxRow() + 2
		if rows < demoRows {
			rows = demoRows
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cfg.Bounds.Columns; col++ {
			idx, occupied := owner[grid.Coordinate{Row: row, Col: col}]
			switch {
			case !occupied:
				b.WriteString(demoEmptyStyle.Render(" ·"))
			case items[idx].ID() == selectedID:
				b.WriteString(demoSelectedStyle.Render(" " + cellRune(idx)))
			default:
				b.WriteString(demoWidgetStyle.Render(" " + cellRune(idx)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if it, ok := m.selectedItem(); ok {
		if w, isWidget := it.(*widget.Widget); isWidget {
			b.WriteString(StyleHighlight.Render(fmt.Sprintf("%s %s at %s", w.Title, w.Footprint(), w.Position())))
			b.WriteString("\n")
		}
	}
	b.WriteString(StyleDim.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

// cellRune labels a widget with a letter by its index.
func cellRune(idx int) string {
	return string(rune('A' + idx%26))
}

// titleCase uppercases the first rune of s.
func titleCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
