package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Eric-lyu-2019/bilby/config"
	"github.com/Eric-lyu-2019/bilby/signal"
	"github.com/Eric-lyu-2019/bilby/waveform"
)

const (
	domainFrequency = "frequency"
	domainTime      = "time"
)

func newEvaluateCmd(root *rootOptions) *cobra.Command {
	var (
		configFile string
		domain     string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a source model and print the strain as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			return runEvaluate(cmd.OutOrStdout(), root.logger, cfg, domain)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&domain, "domain", domainFrequency, "output domain: frequency, time")
	return cmd
}

func runEvaluate(out io.Writer, logger *zap.Logger, cfg *config.Config, domain string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm, err := signal.Lookup(cfg.Model)
	if err != nil {
		return err
	}
	g, err := waveform.NewGenerator(sm, append(cfg.GeneratorOptions(), waveform.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}
	if err := g.SetValues(cfg.Parameters); err != nil {
		if cfg.ConfigFile != "" {
			return fmt.Errorf("setting parameters from %s: %w", cfg.ConfigFile, err)
		}
		return fmt.Errorf("setting parameters: %w", err)
	}
	logger.Info("evaluating",
		zap.String("model", sm.Name),
		zap.String("domain", domain),
		zap.Float64("duration", g.TimeDuration()),
		zap.Float64("sampling_frequency", g.SamplingFrequency()))

	w := bufio.NewWriter(out)
	switch domain {
	case domainFrequency:
		strain, err := g.Strain()
		if err != nil {
			return err
		}
		if err := strain.Validate(g.FrequencyArray().Len()); err != nil {
			return err
		}
		writeFrequencyCSV(w, g, strain)
	case domainTime:
		if !g.IsSet() {
			// Reports the missing key
			if _, err := g.Strain(); err != nil {
				return err
			}
		}
		series, err := g.TimeDomainStrain(g.Values())
		if err != nil {
			return err
		}
		writeTimeCSV(w, g, series)
	default:
		return fmt.Errorf("unknown domain %q (supported: %s, %s)", domain, domainFrequency, domainTime)
	}
	return w.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeFrequencyCSV(w *bufio.Writer, g *waveform.Generator, strain waveform.Strain) {
	f := g.FrequencyArray()
	plus, cross := strain[waveform.Plus], strain[waveform.Cross]
	fmt.Fprintln(w, "frequency,plus_re,plus_im,cross_re,cross_im")
	for index := 0; index < f.Len(); index++ {
		fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
			formatFloat(f.AtVec(index)),
			formatFloat(real(plus[index])), formatFloat(imag(plus[index])),
			formatFloat(real(cross[index])), formatFloat(imag(cross[index])))
	}
}

func writeTimeCSV(w *bufio.Writer, g *waveform.Generator, series map[waveform.Polarization][]float64) {
	times := g.TimeArray()
	plus, cross := series[waveform.Plus], series[waveform.Cross]
	fmt.Fprintln(w, "time,plus,cross")
	for index := 0; index < times.Len(); index++ {
		fmt.Fprintf(w, "%s,%s,%s\n",
			formatFloat(times.AtVec(index)), formatFloat(plus[index]), formatFloat(cross[index]))
	}
}
