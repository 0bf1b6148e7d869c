package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/simonhull/wren/pkg/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// CompletenessTable renders a completeness report as a bordered table with
// one row per category, in display order, and an overall row.
func CompletenessTable(report catalog.Completeness) string {
	rows := make([][]string, 0, len(catalog.Categories())+1)
	for _, c := range catalog.Categories() {
		rows = append(rows, progressRow(c.String(), report[c]))
	}
	rows = append(rows, progressRow("Overall", report.Overall()))
	last := len(rows)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Complete", "Planned", "Total", "Done").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last-1:
				return totalStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}

func progressRow(label string, p catalog.Progress) []string {
	return []string{
		label,
		fmt.Sprint(p.Complete),
		fmt.Sprint(p.Planned),
		fmt.Sprint(p.Total()),
		fmt.Sprintf("%.0f%%", p.Ratio()*100),
	}
}
