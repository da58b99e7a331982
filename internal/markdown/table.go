package markdown

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jdwhite/blogctl/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderPostTable(posts []model.Post) string {
	if len(posts) == 0 {
		return "No posts found."
	}
	rows := make([][]string, len(posts))
	for i, p := range posts {
		rows[i] = []string{p.Slug, p.Title, p.Date.Format("2006-01-02"), RenderStatus(p.Status())}
	}
	return RenderTable([]string{"Slug", "Title", "Date", "Status"}, rows)
}

func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
