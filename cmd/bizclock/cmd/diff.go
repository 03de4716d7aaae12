package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

// Units accepted by diff --unit
const (
	unitAll      = "all"
	unitSteps    = "steps"
	unitDuration = "duration"
	unitPartial  = "partial"
	unitDays     = "days"
)

func newDiffCmd() *cobra.Command {
	var (
		absolute bool
		unit     string
	)

	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Measures the business time between two timestamps",
		Long: `Measures the business time between two timestamps.

The result is positive when <to> lies after <from>. With --absolute the
sign is dropped. --unit selects one of steps, duration, partial, days or
all (default).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			opts, err := a.engineOptions(cmd.Context())
			if err != nil {
				return err
			}
			from, err := parseEngine(args[0], opts)
			if err != nil {
				return err
			}
			to, err := parseEngine(args[1], opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch unit {
			case unitSteps:
				fmt.Fprintln(w, from.DiffInBusinessTime(to, absolute))
			case unitDuration:
				fmt.Fprintln(w, from.DiffBusiness(to, absolute))
			case unitPartial:
				partial, err := from.DiffInPartialBusinessDays(to, absolute)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, partial)
			case unitDays:
				whole, err := from.DiffInBusinessDays(to, absolute)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, whole)
			case unitAll:
				partial, err := from.DiffInPartialBusinessDays(to, absolute)
				if err != nil {
					return err
				}
				whole, err := from.DiffInBusinessDays(to, absolute)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "steps:         %d\n", from.DiffInBusinessTime(to, absolute))
				fmt.Fprintf(w, "duration:      %s\n", from.DiffBusiness(to, absolute))
				fmt.Fprintf(w, "partial days:  %s\n", partial)
				fmt.Fprintf(w, "business days: %d\n", whole)
			default:
				return bizerror.Newf("unknown unit %q", unit).
					WithCode(bizerror.CodeInvalidInput).
					WithOperation("cmd.diff").
					WithDetail("unit", unit)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, "drop the sign of the result")
	cmd.Flags().StringVarP(&unit, "unit", "u", unitAll, "steps, duration, partial, days or all")
	return cmd
}
