package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/adventcalc/internal/cliconfig"
	"github.com/bft-labs/adventcalc/internal/domain"
	"github.com/bft-labs/adventcalc/internal/output"
	"github.com/bft-labs/adventcalc/internal/watch"
)

// Outcome is what a calculator hands back for printing.
type Outcome struct {
	Timings domain.Timings
	Answers []output.Answer
	// Payload is encoded as-is in --json mode.
	Payload any
}

// Calculator runs one calculation over the file at path.
type Calculator func(path string, log zerolog.Logger) (Outcome, error)

// Program describes one calculator binary.
type Program struct {
	Use     string
	Short   string
	Long    string
	Example string
	Run     Calculator
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// NewCommand returns the root command for p.
func NewCommand(p Program) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           p.Use,
		Short:         p.Short,
		Long:          p.Long,
		Example:       p.Example,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := loadConfig(&cfg, cfgPath, changed); err != nil {
				return err
			}

			log := cliconfig.Logger().Level(cfg.Level())
			log.Debug().Interface("config", cfg).Msg("configuration")

			printer := output.Printer{W: cmd.OutOrStdout(), JSON: cfg.JSON, Timings: cfg.Timings}
			if err := runOnce(p.Run, cfg.InputPath, log, printer); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watchInput(ctx, p.Run, cfg, log, printer)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.adventcalc/config.toml)")
	root.Flags().StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "puzzle input file (default: puzzle_input.txt, then ../puzzle_input.txt)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.JSON, "json", cfg.JSON, "print the result as JSON")
	root.Flags().BoolVar(&cfg.Timings, "timings", cfg.Timings, "print elapsed time per phase")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "recalculate whenever the input file changes")
	root.Flags().DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "quiet period before recalculating in watch mode")

	return root
}

// loadConfig layers the config file and environment under the flags already
// parsed into cfg, then validates the result.
func loadConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgFile != "" && (cfgPath != "" || cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func runOnce(calc Calculator, path string, log zerolog.Logger, printer output.Printer) error {
	out, err := calc(path, log)
	if err != nil {
		return err
	}
	return printer.Print(out.Timings, out.Answers, out.Payload)
}

func watchInput(ctx context.Context, calc Calculator, cfg cliconfig.Config, log zerolog.Logger, printer output.Printer) error {
	w, err := watch.New(cfg.InputPath, cfg.WatchDebounce, func(context.Context) {
		if err := runOnce(calc, cfg.InputPath, log, printer); err != nil {
			log.Error().Err(err).Msg("recalculation failed")
		}
	}, log)
	if err != nil {
		return err
	}

	log.Info().Str("path", cfg.InputPath).Msg("watching input, press Ctrl+C to stop")
	w.Run(ctx)
	log.Info().Msg("stopped watching")
	return nil
}

// Main executes the command for p and exits non-zero on failure.
func Main(p Program) {
	if err := NewCommand(p).Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg(p.Use)
		os.Exit(1)
	}
}
