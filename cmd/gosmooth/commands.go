package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gosmooth/autoets"
	"github.com/sartorproj/gosmooth/ets"
	"github.com/sartorproj/gosmooth/forecast"
	"github.com/sartorproj/gosmooth/stats"
	"github.com/sartorproj/gosmooth/table"
	"github.com/sartorproj/gosmooth/timeseries"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gosmooth",
		Short:         "Clean wide-format tables and forecast time series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCleanCmd(), newDecomposeCmd(), newForecastCmd())
	return root
}

type cleanFlags struct {
	sheet        string
	extract      []string
	stripCode    []string
	split        string
	splitSep     string
	splitNames   []string
	idColumns    []string
	varName      string
	valueName    string
	dateLayout   string
	output       string
	skipValidate bool
}

func newCleanCmd() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean <input.csv|input.xlsx>",
		Short: "Extract fields, reshape wide data to long form, and parse dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.sheet, "sheet", "Sheet1", "sheet name for XLSX input")
	cmd.Flags().StringArrayVar(&flags.extract, "extract-after", nil, "column=sep: keep text after the first sep")
	cmd.Flags().StringArrayVar(&flags.stripCode, "strip-code", nil, "column: drop a leading numeric code and space")
	cmd.Flags().StringVar(&flags.split, "split", "", "column to split into several columns")
	cmd.Flags().StringVar(&flags.splitSep, "split-sep", " - ", "separator for --split")
	cmd.Flags().StringSliceVar(&flags.splitNames, "split-names", nil, "names for split tokens, empty name drops the token")
	cmd.Flags().StringSliceVar(&flags.idColumns, "id", nil, "id columns preserved by the reshape")
	cmd.Flags().StringVar(&flags.varName, "var-name", "month", "name of the label column in long form")
	cmd.Flags().StringVar(&flags.valueName, "value-name", "value", "name of the value column in long form")
	cmd.Flags().StringVar(&flags.dateLayout, "date-layout", "Jan-02-2006", "reference layout for the label column")
	cmd.Flags().StringVar(&flags.output, "output", "", "output CSV path (default: stdout)")
	cmd.Flags().BoolVar(&flags.skipValidate, "skip-date-check", false, "do not validate label dates after the reshape")

	return cmd
}

func runClean(input string, flags *cleanFlags) error {
	tbl, err := loadTable(input, flags.sheet)
	if err != nil {
		return err
	}
	slog.Info("loaded table", "rows", tbl.NumRows(), "columns", len(tbl.Headers))

	for _, spec := range flags.extract {
		column, sep, found := strings.Cut(spec, "=")
		if !found {
			return fmt.Errorf("--extract-after %q: expected column=sep", spec)
		}
		if err := tbl.ExtractAfter(column, sep); err != nil {
			return err
		}
	}
	for _, column := range flags.stripCode {
		if err := tbl.StripLeadingCode(column); err != nil {
			return err
		}
	}
	if flags.split != "" {
		if err := tbl.SplitColumn(flags.split, flags.splitSep, flags.splitNames); err != nil {
			return err
		}
	}

	out := tbl
	if len(flags.idColumns) > 0 {
		long, err := tbl.Melt(flags.idColumns, flags.varName, flags.valueName)
		if err != nil {
			return err
		}
		if !flags.skipValidate {
			if _, err := long.ParseDates(flags.varName, flags.dateLayout); err != nil {
				return err
			}
		}
		slog.Info("reshaped to long form", "rows", long.NumRows())
		out = long
	}

	if flags.output == "" {
		return out.WriteCSV(os.Stdout)
	}
	return out.SaveCSV(flags.output)
}

func loadTable(input, sheet string) (*table.Table, error) {
	if strings.HasSuffix(strings.ToLower(input), ".xlsx") {
		return table.LoadXLSX(input, sheet)
	}
	return table.LoadCSV(input)
}

func newDecomposeCmd() *cobra.Command {
	var (
		period     int
		decompType string
		valueCol   string
		dateCol    string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "decompose <input.csv>",
		Short: "Split a series into trend, seasonal, and residual components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := loadSeries(args[0], dateCol, valueCol)
			if err != nil {
				return err
			}

			decomp, err := stats.Decompose(series, period, decompType)
			if err != nil {
				return err
			}
			slog.Info("decomposed series", "n", series.Len(), "period", period, "type", decompType)

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			fmt.Fprintln(w, "ds,y,trend,seasonal,residual")
			for i := range series.Values {
				fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
					series.Timestamps[i].Format("2006-01-02"),
					formatCell(series.Values[i]),
					formatCell(decomp.Trend.Values[i]),
					formatCell(decomp.Seasonal.Values[i]),
					formatCell(decomp.Residual.Values[i]))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&period, "period", 52, "seasonal cycle length")
	cmd.Flags().StringVar(&decompType, "type", "additive", `"additive" or "multiplicative"`)
	cmd.Flags().StringVar(&valueCol, "value-column", "y", "value column name")
	cmd.Flags().StringVar(&dateCol, "date-column", "", "date column name (default: autodetect)")
	cmd.Flags().StringVar(&output, "output", "", "output CSV path (default: stdout)")

	return cmd
}

func newForecastCmd() *cobra.Command {
	var (
		method      string
		horizon     int
		period      int
		alpha       float64
		beta        float64
		valueCol    string
		dateCol     string
		diagnostics bool
	)

	cmd := &cobra.Command{
		Use:   "forecast <input.csv>",
		Short: "Forecast a series h steps ahead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := loadSeries(args[0], dateCol, valueCol)
			if err != nil {
				return err
			}

			forecasts, residuals, fitdf, err := runForecast(series, method, horizon, period, alpha, beta)
			if err != nil {
				return err
			}

			if diagnostics && residuals != nil {
				lags := 10
				if period >= 2 && 2*period > lags {
					lags = 2 * period
				}
				if lb := stats.LjungBox(residuals, lags, fitdf); lb != nil {
					slog.Info("residual diagnostics",
						"ljung_box", fmt.Sprintf("%.3f", lb.Statistic),
						"p_value", fmt.Sprintf("%.4f", lb.PValue),
						"white_noise", lb.PValue > 0.05)
				}
			}

			fmt.Println("h,forecast")
			for i, f := range forecasts {
				fmt.Printf("%d,%s\n", i+1, formatCell(f))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "auto", "naive|snaive|drift|mean|ses|holt|ets|auto")
	cmd.Flags().IntVar(&horizon, "horizon", 12, "steps ahead to forecast")
	cmd.Flags().IntVar(&period, "period", 0, "seasonal cycle length (0 = non-seasonal)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.3, "level smoothing parameter for ses/holt")
	cmd.Flags().Float64Var(&beta, "beta", 0.1, "trend smoothing parameter for holt")
	cmd.Flags().StringVar(&valueCol, "value-column", "y", "value column name")
	cmd.Flags().StringVar(&dateCol, "date-column", "", "date column name (default: autodetect)")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "run a Ljung-Box check on the residuals")

	return cmd
}

func runForecast(series *timeseries.Series, method string, horizon, period int, alpha, beta float64) (forecasts []float64, residuals *timeseries.Series, fitdf int, err error) {
	switch method {
	case "naive":
		m := &forecast.Naive{}
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		out, err := m.Forecast(horizon)
		return out, nil, 0, err
	case "snaive":
		m := &forecast.SeasonalNaive{Period: period}
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		out, err := m.Forecast(horizon)
		return out, nil, 0, err
	case "drift":
		m := &forecast.Drift{}
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		out, err := m.Forecast(horizon)
		return out, nil, 0, err
	case "mean":
		m := &forecast.Mean{}
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		out, err := m.Forecast(horizon)
		return out, nil, 0, err
	case "ses":
		m := forecast.NewSES(alpha)
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		out, err := m.Forecast(horizon)
		return out, m.Residuals(), 1, err
	case "holt":
		m := forecast.NewHolt(alpha, beta)
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		out, err := m.Forecast(horizon)
		return out, m.Residuals(), 2, err
	case "ets":
		spec := ets.Spec{Trend: ets.TrendAdditive}
		if period >= 2 {
			spec.Seasonal = ets.SeasonalAdditive
		}
		m := ets.New(spec, period)
		if err := m.Fit(series); err != nil {
			return nil, nil, 0, err
		}
		slog.Info("fitted model", "spec", spec.String(),
			"aicc", fmt.Sprintf("%.2f", m.AICc))
		out, err := m.Forecast(horizon)
		return out, m.Residuals(), 2, err
	case "auto":
		result, err := autoets.Search(series, period, nil)
		if err != nil {
			return nil, nil, 0, err
		}
		slog.Info("selected model", "spec", result.Spec.String(),
			"aicc", fmt.Sprintf("%.2f", result.AICc),
			"models_evaluated", result.ModelsEvaluated)
		out, err := result.Forecast(horizon)
		return out, result.Residuals(), 2, err
	default:
		return nil, nil, 0, fmt.Errorf("unknown method %q", method)
	}
}

func loadSeries(path, dateCol, valueCol string) (*timeseries.Series, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = valueCol
	opts.DateColumn = dateCol
	return timeseries.LoadCSV(path, opts)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
