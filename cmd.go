package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jorgenbele/go-clock/clock"
	"github.com/jorgenbele/go-clock/status"
)

func newRootCmd(c clockwork.Clock) *cobra.Command {
	v := viper.New()
	setDefaults(v)

	var configPath string
	cmd := &cobra.Command{
		Use:           "go-clock",
		Short:         "A 12-hour digital clock for i3bar, lemonbar, dzen2 or the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			explicit := configPath != ""
			useConfigFile(v, configPath)
			cfg, err := readConfig(v, explicit)
			if err != nil {
				return err
			}
			return run(cmd.Context(), c, v, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/go-clock/config.yaml)")
	flags.String("bar", barDefault, "output format: i3bar, lemonbar, dzen2 or tui")
	flags.String("log-level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(newNowCmd(c))
	return cmd
}

func newNowCmd(c clockwork.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current time once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), clock.FormatTime(c.Now()))
			return err
		},
	}
}

// bindFlags lets the command line override the config file.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.Flags()
	if err := v.BindPFlag("bar", flags.Lookup("bar")); err != nil {
		return errors.Wrap(err, "bind --bar")
	}
	if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return errors.Wrap(err, "bind --log-level")
	}
	return nil
}

func useConfigFile(v *viper.Viper, path string) {
	if path != "" {
		v.SetConfigFile(path)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "go-clock"))
	}
}

// run shows the clock on the configured bar until a term signal arrives,
// ctx is done or, for the terminal bar, the user quits.
func run(ctx context.Context, c clockwork.Clock, v *viper.Viper, cfg Config, stdout, stderr io.Writer) error {
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	style, err := cfg.Clock.Style()
	if err != nil {
		return err
	}
	gen := NewClockGenerator(c, style, logger.WithPrefix("clock"))

	bar, prog, err := newBar(cfg.Bar, stdout)
	if err != nil {
		return err
	}

	st := status.NewStatus(bar, logger)
	if err := st.AddWidget(status.Widget{Gen: gen}); err != nil {
		return err
	}

	term := notify(os.Interrupt, syscall.SIGTERM)
	stop := notify(stopSignal)
	cont := notify(contSignal)
	defer signal.Stop(term)
	defer signal.Stop(stop)
	defer signal.Stop(cont)
	if err := st.SetTermSignal(term); err != nil {
		return err
	}
	if err := st.SetStopSignal(stop); err != nil {
		return err
	}
	if err := st.SetContSignal(cont); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if path := v.ConfigFileUsed(); path != "" {
		go watchConfig(ctx, v, gen, logger)
	}

	logger.Info("Starting", "bar", cfg.Bar, "config", v.ConfigFileUsed())
	if prog == nil {
		return st.Start(ctx)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- st.Start(ctx)
		prog.Quit()
	}()
	_, perr := prog.Run()
	cancel()
	return errors.CombineErrors(perr, <-errc)
}

func notify(sig ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig...)
	return ch
}

// watchConfig restyles the clock whenever the config file changes. Bar and
// log level changes need a restart.
func watchConfig(ctx context.Context, v *viper.Viper, gen *ClockGenerator, logger *log.Logger) {
	path := v.ConfigFileUsed()

	// Editors often replace the file, so watch its directory.
	ticker, err := status.NewFsNotifyTicker([]string{filepath.Dir(path)}, logger)
	if err != nil {
		logger.Warn("Config reload disabled", "path", path, "err", err)
		return
	}
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := reloadStyle(v, gen); err != nil {
				logger.Warn("Ignoring config change", "path", path, "err", err)
				continue
			}
			logger.Info("Reloaded clock style", "path", path)
		}
	}
}

func reloadStyle(v *viper.Viper, gen *ClockGenerator) error {
	cfg, err := readConfig(v, true)
	if err != nil {
		return err
	}
	style, err := cfg.Clock.Style()
	if err != nil {
		return err
	}
	gen.SetStyle(style)
	return nil
}
