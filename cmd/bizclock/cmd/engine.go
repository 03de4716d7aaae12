package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/bizclock/foundation/utils/mathx"
	"github.com/msto63/bizclock/foundation/utils/timex"
	"github.com/msto63/bizclock/pkg/businesstime"
	"github.com/msto63/bizclock/pkg/core/logging"
)

func newIsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is <timestamp>",
		Short: "Reports whether a timestamp is business time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := appFrom(cmd).engine(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.IsBusinessTime())
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <timestamp> <days>",
		Short: "Adds business days, fractions allowed",
		Long: `Adds a number of business days to a timestamp. Fractions such as
0.5 or 2.25 are measured against the length of one business day.
Negative amounts subtract; pass them after "--".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args, (*businesstime.Engine).AddBusinessDays)
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <timestamp> <days>",
		Short: "Subtracts business days, fractions allowed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args, (*businesstime.Engine).SubBusinessDays)
		},
	}
}

func runShift(cmd *cobra.Command, args []string, shift func(*businesstime.Engine, mathx.Decimal) (*businesstime.Engine, error)) error {
	n, err := mathx.NewDecimal(args[1])
	if err != nil {
		return err
	}

	a := appFrom(cmd)
	e, err := a.engine(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out, err := shift(e, n)
	if err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Info().
		Str("from", e.ISOString()).
		Str("days", n.String()).
		Str("to", out.ISOString()).
		Msg(cmd.Name())
	fmt.Fprintln(cmd.OutOrStdout(), out.ISOString())
	return nil
}

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <timestamp>",
		Short: "Shows start and end of the business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := appFrom(cmd).engine(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			start, err := e.StartOfBusinessDay()
			if err != nil {
				return err
			}
			end, err := e.EndOfBusinessDay()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "start: %s\n", start.ISOString())
			fmt.Fprintf(w, "end:   %s\n", end.ISOString())
			return nil
		},
	}
}

func newStartOfCmd() *cobra.Command {
	return newUnitBoundCmd("start-of", "Shows the first instant of the calendar unit", (*businesstime.Engine).StartOf)
}

func newEndOfCmd() *cobra.Command {
	return newUnitBoundCmd("end-of", "Shows the last instant of the calendar unit", (*businesstime.Engine).EndOf)
}

// newUnitBoundCmd builds start-of and end-of, which share the --unit flag
func newUnitBoundCmd(use, short string, bound func(*businesstime.Engine, timex.Unit) *businesstime.Engine) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   use + " <timestamp>",
		Short: short,
		Long: short + ` containing the timestamp. Units are
second, minute, hour, day, week (starting Monday), month and year; plural
forms are accepted. Business rules do not apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := timex.ParseUnit(unit)
			if err != nil {
				return err
			}
			e, err := appFrom(cmd).engine(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bound(e, u).ISOString())
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "day", "calendar unit")
	return cmd
}

func newLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length",
		Short: "Shows how much business time one day holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := appFrom(cmd).engineOptions(cmd.Context())
			if err != nil {
				return err
			}
			e, err := businesstime.FromTime(time.Now(), opts...)
			if err != nil {
				return err
			}

			length, err := e.LengthOfBusinessDay()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), length)
			return nil
		},
	}
}
