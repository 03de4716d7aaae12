package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/timex"
	"github.com/msto63/bizclock/internal/holidays/store"
	"github.com/msto63/bizclock/pkg/businesstime"
	"github.com/msto63/bizclock/pkg/core/config"
	"github.com/msto63/bizclock/pkg/core/logging"
)

// flags shared by every command
type rootFlags struct {
	cfgFile   string
	precision string
	format    string
	logLevel  string
	logFormat string
	verbose   bool
}

// app is the state a command runs with once the root has prepared it. The
// invocation's logger travels in the command context.
type app struct {
	cfg *config.Config
}

type appKey struct{}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "bizclock",
		Short: "Business time arithmetic",
		Long: `bizclock computes with business time: the part of the calendar
that falls inside opening hours, working weekdays and outside holidays.

Timestamps accept RFC 3339, ISO 8601 variants and unix seconds.
Rules come from a profile file (see configs/bizclock.toml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, logger, err := prepare(cmd, flags, args)
			if err != nil {
				return err
			}
			ctx := logging.IntoContext(cmd.Context(), logger)
			cmd.SetContext(context.WithValue(ctx, appKey{}, a))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config", "", "profile file (default: $BIZCLOCK_CONFIG or ./configs/bizclock.toml)")
	pf.StringVar(&flags.precision, "precision", "", "step size, overrides the profile (e.g. 15m)")
	pf.StringVar(&flags.format, "format", "", "parse layout or named format for timestamps")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (console, json)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "print code, severity and details of a failure")

	root.AddCommand(
		newIsCmd(),
		newAddCmd(),
		newSubCmd(),
		newDiffCmd(),
		newBoundsCmd(),
		newStartOfCmd(),
		newEndOfCmd(),
		newLengthCmd(),
		newWeekCmd(),
		newHolidaysCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI and returns the process exit status
func Execute() int {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		verbose, _ := root.PersistentFlags().GetBool("verbose")
		printError(root.ErrOrStderr(), err, verbose)
		return exitCode(err)
	}
	return 0
}

// prepare resolves the profile and flag overrides and builds the logger for
// one invocation. args are the positional arguments cobra resolved.
func prepare(cmd *cobra.Command, flags *rootFlags, args []string) (*app, zerolog.Logger, error) {
	cfg, err := loadConfig(flags.cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if flags.precision != "" {
		d, err := timex.ParseDuration(flags.precision)
		if err != nil {
			return nil, zerolog.Nop(), err
		}
		cfg.Engine.Precision.Duration = d
	}
	if flags.format != "" {
		cfg.Engine.Layout = flags.format
	}
	if flags.logLevel != "" {
		cfg.General.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.General.LogFormat = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	logger = logging.WithCorrelationID(logger, uuid.New().String())
	logger.Debug().Str("command", cmd.CommandPath()).Strs("args", args).Msg("invocation")

	return &app{cfg: cfg}, logger, nil
}

// loadConfig reads the explicit profile, or the discovered one, falling back
// to defaults when no profile exists at all
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cfg, err := config.LoadFromEnv()
	if bizerror.HasCode(err, bizerror.CodeMissingConfig) && os.Getenv(config.EnvConfigPath) == "" {
		return config.Default(), nil
	}
	return cfg, err
}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}

// engineOptions assembles engine options, merging stored holidays when the
// profile enables the store
func (a *app) engineOptions(ctx context.Context) ([]businesstime.Option, error) {
	var stored []string
	if a.cfg.Holidays.UseStore {
		s, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer s.Close()

		stored, err = s.Dates(ctx, a.cfg.Holidays.Calendar)
		if err != nil {
			return nil, err
		}
		logging.FromContext(ctx).Debug().
			Str("calendar", a.cfg.Holidays.Calendar).
			Int("count", len(stored)).
			Msg("loaded stored holidays")
	}
	return a.cfg.EngineOptions(*logging.FromContext(ctx), stored...)
}

// engine parses raw with the profile's rules; "now" means the current time
func (a *app) engine(ctx context.Context, raw string) (*businesstime.Engine, error) {
	opts, err := a.engineOptions(ctx)
	if err != nil {
		return nil, err
	}
	return parseEngine(raw, opts)
}

func parseEngine(raw string, opts []businesstime.Option) (*businesstime.Engine, error) {
	if strings.EqualFold(raw, "now") {
		return businesstime.FromTime(time.Now(), opts...)
	}
	return businesstime.New(raw, opts...)
}

func (a *app) openStore() (*store.SQLiteHolidayStore, error) {
	path := a.cfg.Holidays.StorePath
	if path == "" {
		path = store.DefaultConfig().Path
	}
	return store.NewSQLiteHolidayStore(store.Config{Path: path})
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return bizerror.GetCode(err).ExitCode()
}

// printError reports err on w. In verbose mode a structured error is printed
// with its code, severity, operation and details.
func printError(w io.Writer, err error, verbose bool) {
	var be *bizerror.Error
	if verbose && errors.As(err, &be) {
		fmt.Fprintln(w, be.String())
		return
	}

	code := bizerror.GetCode(err)
	if code == bizerror.CodeUnknown {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
}
