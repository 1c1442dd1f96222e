package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsuth/clisurf/internal/buildinfo"
	"github.com/rsuth/clisurf/internal/domain"
	"github.com/rsuth/clisurf/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	fields     fieldSelection
	metric     bool
	format     string
	configPath string
	debug      bool
	logDir     string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "clisurf [station-id]",
		Short: "A command-line swell data checker",
		Long: "Fetches and displays ocean conditions for a CDIP station: wave height, wave period,\n" +
			"wave direction and water temperature, in imperial or metric units.",
		Version:       buildinfo.String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(f.format); err != nil {
				return err
			}

			cleanup, err := logger.Setup(logger.Config{Dir: f.logDir, Debug: f.debug})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
			}
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			if f.debug && logger.IsReady() == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}

			app, err := loadApp(f.configPath, logger.L())
			if err != nil {
				return describe("", err)
			}

			station := app.cfg.Defaults.Station
			if len(args) == 1 {
				station = args[0]
			}

			units := app.cfg.Defaults.Units
			if f.metric {
				units = domain.UnitsMetric
			}

			rec, err := app.fetch.Execute(cmd.Context(), station)
			if err != nil {
				logger.L().Info("clisurf.failed", "station", station, "err", err)
				return describe(station, err)
			}

			return printRecord(cmd.OutOrStdout(), rec, renderOptions{
				Fields: f.fields,
				Units:  units,
				Format: f.format,
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&f.fields.Height, "wave-height", "f", false, "Display wave height")
	flags.BoolVarP(&f.fields.Period, "wave-period", "p", false, "Display wave period")
	flags.BoolVarP(&f.fields.Direction, "wave-direction", "d", false, "Display wave direction")
	flags.BoolVarP(&f.fields.Temp, "water-temp", "t", false, "Display water temperature")
	flags.BoolVarP(&f.metric, "metric", "m", false, "Use metric units (meters, Celsius)")
	flags.StringVar(&f.format, "format", formatPretty, "Output format: pretty|json")

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "Config file (default <user config dir>/clisurf/clisurf.yaml)")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable verbose logging to <user cache dir>/clisurf/clisurf.log")
	cmd.PersistentFlags().StringVar(&f.logDir, "log-dir", "", "Directory for the debug log")
	_ = cmd.PersistentFlags().MarkHidden("log-dir")

	return cmd
}
