package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/presets"
	"github.com/ensigniasec/countdown/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile = config.DefaultPath
	verbose    bool
	timers     int
	modeFlag   string
	noBell     bool
	presetNum  int

	rootCmd = &cobra.Command{
		Use:   "countdown",
		Short: "A small countdown timer for the terminal with one-key presets.",
		Long:  `Counts down from a preset or a typed duration (seconds like 90, or m:ss like 1:30) and rings the terminal bell when time is up. Run several independent timers side by side with --timers.`,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			f, err := config.NewOrExisting(configFile)
			if err != nil {
				logrus.Fatalf("Unable to open or create config: %v", err)
			}
			opts, err := timerOptions(f)
			if err != nil {
				logrus.Fatal(err)
			}
			opts.Timers = timers
			if err := tui.Run(cmd.Context(), opts); err != nil {
				logrus.Fatalf("TUI failed: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr; headless label lines own stdout.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().
		StringVar(&modeFlag, "mode", "", "Timing strategy: wallclock (default) or counter. Overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noBell, "no-bell", false, "Do not ring the terminal bell")
	rootCmd.Flags().IntVar(&timers, "timers", 1, "Number of independent timers to show side by side")

	startCmd.Flags().IntVar(&presetNum, "preset", 0, "Start the Nth configured preset (1-based) instead of DURATION")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsAddCmd)
	presetsCmd.AddCommand(presetsResetCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

// timerOptions merges the config file with the command-line overrides.
func timerOptions(f *config.File) (tui.Options, error) {
	ps, err := f.Presets()
	if err != nil {
		return tui.Options{}, err
	}
	mode, err := f.Mode()
	if err != nil {
		return tui.Options{}, err
	}
	if modeFlag != "" {
		if mode, err = countdown.ParseMode(modeFlag); err != nil {
			return tui.Options{}, err
		}
	}
	return tui.Options{
		Presets: ps,
		Mode:    mode,
		Bell:    f.Data.Bell && !noBell,
	}, nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var startCmd = &cobra.Command{
	Use:   "start [DURATION]",
	Short: "Count down once without the interactive UI",
	Long:  "Count down from DURATION (90 or 1:30) or from --preset N, printing the clock each time it changes and ringing the bell at zero.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := tui.StartRequest{}
		switch {
		case presetNum > 0 && len(args) == 0:
			req.UsePreset = true
			req.Preset = presetNum - 1
		case presetNum == 0 && len(args) == 1:
			req.Text = args[0]
		default:
			logrus.Fatal("Give exactly one of DURATION or --preset N")
		}

		f, err := config.NewFile(configFile)
		if err != nil {
			logrus.Fatalf("Unable to read config: %v", err)
		}
		opts, err := timerOptions(f)
		if err != nil {
			logrus.Fatal(err)
		}
		opts.Out = os.Stdout
		if err := tui.RunHeadless(cmd.Context(), opts, req); err != nil {
			logrus.Fatalf("Countdown failed: %v", err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage the one-click preset durations",
	Long:  "View, add, or reset the preset durations shown as buttons and bound to the 1-9 keys.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		m, err := presets.NewManager(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		m.View(os.Stdout)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetsAddCmd = &cobra.Command{
	Use:   "add [LABEL] [DURATION]",
	Short: "Append a preset",
	Long:  "Append a preset button. DURATION uses the same grammar as the duration field, e.g. 45 or 2:30.",
	Args:  cobra.ExactArgs(2), //nolint:mnd // Presets 'add' requires exactly 2 arguments by CLI contract
	Run: func(cmd *cobra.Command, args []string) {
		m, err := presets.NewManager(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := m.Add(args[0], args[1]); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Added preset %q\n", args[0])
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var presetsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		m, err := presets.NewManager(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := m.Reset(); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, "Presets reset to defaults")
	},
}

func main() {
	Execute()
}
