package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxRuns is the number of runs listed on the high score screen.
const maxRuns = 20

// HighScoreView shows the best score of this process and the runs behind it.
type HighScoreView struct {
	highScore int
	runs      []storage.RunEntry
	table     table.Model
	width     int
	height    int
}

// NewHighScoreView creates an empty high score view for the given screen size.
func NewHighScoreView(width, height int) *HighScoreView {
	v := &HighScoreView{width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a new table sized for the current screen.
func (v *HighScoreView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 7},
		{Title: "Pieces", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-10, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the run list. A nil store shows only the high score.
func (v *HighScoreView) Refresh(store *storage.Store, highScore int) error {
	v.highScore = highScore
	v.runs = nil

	if store != nil {
		runs, err := store.TopRuns(maxRuns)
		if err != nil {
			v.updateTableRows()
			return err
		}
		v.runs = runs
	}

	v.updateTableRows()
	return nil
}

// updateTableRows updates the table with the loaded runs.
func (v *HighScoreView) updateTableRows() {
	rows := make([]table.Row, len(v.runs))
	for i, r := range v.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Pieces),
			r.Player,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// SetSize adapts the view to a new screen size.
func (v *HighScoreView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateTableRows()
}

// HighScore returns the displayed high score.
func (v *HighScoreView) HighScore() int {
	return v.highScore
}

// Runs returns the displayed runs, best first.
func (v *HighScoreView) Runs() []storage.RunEntry {
	return v.runs
}

// Update passes scrolling keys to the table.
func (v *HighScoreView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

// View renders the high score screen without the help line.
func (v *HighScoreView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("High Score: %d", v.highScore)), v.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(v.width, lipgloss.Center, tableStyle.Render(v.renderTableContent())))
	b.WriteString("\n")

	return b.String()
}

// renderTableContent renders the table or empty message.
func (v *HighScoreView) renderTableContent() string {
	if len(v.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games finished yet.\nPlay a game to set a high score!")
	}

	return v.table.View()
}
