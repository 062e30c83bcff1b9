package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonhull/krc"
	"github.com/simonhull/krc/internal/config"
	"github.com/simonhull/krc/internal/convert"
)

// app is the state shared by all subcommands. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	logger *slog.Logger

	// persistent flags
	charset  string
	logLevel string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "krc",
		Short:         "Decode Kugou KRC karaoke lyrics",
		Long:          "A command-line tool to decode, inspect and watch Kugou KRC karaoke lyrics files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.charset, "charset", "c", "", "Charset of the decompressed text (WHATWG label, default from KRC_CHARSET or utf-8)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from KRC_LOG_LEVEL or info)")

	root.AddCommand(a.decodeCmd())
	root.AddCommand(a.dumpCmd())
	root.AddCommand(a.watchCmd())
	root.AddCommand(a.versionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("charset") {
		if _, err := config.LookupCharset(a.charset); err != nil {
			return err
		}
		cfg.Charset = a.charset
	}
	if cmd.Flags().Changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return nil
}

// decodeOptions turns the loaded config into library options.
func (a *app) decodeOptions() ([]krc.Option, error) {
	enc, err := a.cfg.Encoding()
	if err != nil {
		return nil, err
	}
	opts := []krc.Option{
		krc.WithLogger(a.logger),
		krc.WithConcurrency(a.cfg.Workers),
	}
	if enc != nil {
		opts = append(opts, krc.WithCharset(enc))
	}
	return opts, nil
}

// converter returns nil when no conversion is configured.
func (a *app) converter() (convert.TextConverter, error) {
	if a.cfg.Convert == "" {
		return nil, nil
	}
	return convert.New(a.cfg.Convert, a.logger)
}
