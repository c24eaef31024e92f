package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/barcharts/internal/chart"
	"github.com/HamletTheHamster/barcharts/internal/display"
	"github.com/HamletTheHamster/barcharts/internal/log"
	"github.com/HamletTheHamster/barcharts/internal/notebook"
)

var ErrInvalidArgument = errors.New("invalid argument")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
		RunE: func(cc *cobra.Command, _ []string) error {
			s, err := newSession(cc)
			if err != nil {
				return err
			}

			all, err := cc.Flags().GetBool("all")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			s.All = all

			s.Animation, err = cc.Flags().GetString("gif")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			return s.Run()
		},
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentFlags().StringP("out", "o", ".", "Directory for exported charts")
	cmd.PersistentFlags().StringSlice("format", []string{"png"}, "Image formats to export (png, svg, pdf, ...)")
	cmd.PersistentFlags().String("config", "", "YAML file overriding the chart styles")
	cmd.PersistentFlags().Bool("show", false, "Show each chart in a gnuplot window")
	cmd.PersistentFlags().Bool("persist", true, "Keep gnuplot windows open after the chart is shown")

	if err := cmd.MarkPersistentFlagDirname("out"); err != nil {
		panic(err)
	}
	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}

	cmd.Flags().Bool("all", false, "Export every chart, not only the basic one")
	cmd.Flags().String("gif", "", "Also write an animated GIF stepping through every chart")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// newSession builds a session from the persistent flags.
func newSession(cc *cobra.Command) (*notebook.Session, error) {
	flags := cc.Flags()

	var merr error

	out, err := flags.GetString("out")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	formats, err := flags.GetStringSlice("format")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	for _, f := range formats {
		if _, err := chart.FormatOf("chart." + f); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	configPath, err := flags.GetString("config")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	show, err := flags.GetBool("show")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	persist, err := flags.GetBool("persist")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	s := notebook.New(out)
	if len(formats) > 0 {
		s.Formats = formats
	}

	if configPath != "" {
		cfgs, err := notebook.LoadConfigs(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading chart styles: %w", err)
		}
		s.Configs = cfgs
	}

	if show {
		s.Display = display.Gnuplot{Persist: persist}
	}

	return s, nil
}
