package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/bizclock/foundation/utils/timex"
	"github.com/msto63/bizclock/pkg/businesstime"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	openCellStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	closedCellStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

const (
	openCell   = "██"
	closedCell = "··"
)

func newWeekCmd() *cobra.Command {
	var box bool

	cmd := &cobra.Command{
		Use:   "week [timestamp]",
		Short: "Draws the business hours of a week",
		Long: `Draws one row per day of the week containing the timestamp (default:
now) and one column per hour. A cell is open when the start of that hour is
business time. The last column sums each day's business time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "now"
			if len(args) == 1 {
				raw = args[0]
			}
			e, err := appFrom(cmd).engine(cmd.Context(), raw)
			if err != nil {
				return err
			}

			out := renderWeek(e)
			if box {
				out = boxStyle.Render(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&box, "box", false, "draw a border around the grid")
	return cmd
}

// renderWeek builds the hour grid for the week of e
func renderWeek(e *businesstime.Engine) string {
	monday := e.StartOf(timex.Week)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Week of " + monday.Format(timex.ISO8601Date)))
	b.WriteString("\n")

	header := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		header = append(header, fmt.Sprintf("%02d", h))
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %s", "", strings.Join(header, ""))))
	b.WriteString("\n")

	for d := 0; d < 7; d++ {
		day := monday.AddDays(d)

		cells := make([]string, 0, 24)
		for h := 0; h < 24; h++ {
			if day.Add(time.Duration(h) * time.Hour).IsBusinessTime() {
				cells = append(cells, openCellStyle.Render(openCell))
			} else {
				cells = append(cells, closedCellStyle.Render(closedCell))
			}
		}

		total := day.DiffBusiness(day.AddDays(1), true)
		label := fmt.Sprintf("%-3s %s", day.Time().Weekday().String()[:3], day.Format("01-02"))
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			fmt.Sprintf("%-14s ", label),
			strings.Join(cells, ""),
			" "+timex.FormatDurationCompact(total),
		)
		b.WriteString(row)
		if d < 6 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
