package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/bizclock/internal/holidays/store"
	"github.com/msto63/bizclock/pkg/core/logging"
)

func newHolidaysCmd() *cobra.Command {
	var calendar string

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manages stored holiday calendars",
		Long: `Manages holidays kept in the SQLite store at holidays.store_path.
Stored dates of the active calendar are excluded from business time when
holidays.use_store is enabled.`,
	}
	cmd.PersistentFlags().StringVar(&calendar, "calendar", "", "calendar name (default: holidays.calendar)")

	calendarOf := func(a *app) string {
		if calendar != "" {
			return calendar
		}
		return a.cfg.Holidays.Calendar
	}

	addCmd := &cobra.Command{
		Use:   "add <date> [name...]",
		Short: "Adds a holiday (YYYY-MM-DD)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			h, err := s.Add(cmd.Context(), calendarOf(a), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info().Str("id", h.ID).Str("calendar", h.Calendar).Str("date", h.Date).Msg("holiday added")
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", h.Date, h.Calendar)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the holidays of a calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			holidays, err := s.List(cmd.Context(), calendarOf(a))
			if err != nil {
				return err
			}

			if len(holidays) == 0 {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHolidays(holidays))
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove <date>",
		Aliases: []string{"rm"},
		Short:   "Removes a holiday",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Remove(cmd.Context(), calendarOf(a), args[0]); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info().Str("calendar", calendarOf(a)).Str("date", args[0]).Msg("holiday removed")
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", args[0], calendarOf(a))
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, removeCmd)
	return cmd
}

// renderHolidays draws the holidays as a table in the week grid's colors
func renderHolidays(holidays []*store.Holiday) string {
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, []string{h.Date, h.Name})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(headerStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return titleStyle.Padding(0, 1)
			case col == 0:
				return openCellStyle.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Headers("DATE", "NAME").
		Rows(rows...).
		String()
}
