package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midbel/opscharts/dash"
)

var version = "dev"

var (
	settings = viper.New()
	logger   = slog.Default()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "draw",
	Short:         "Render dashboard charts as SVG or HTML",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		if err := loadSettings(file); err != nil {
			return err
		}
		logger = setupLogger(cmd.ErrOrStderr(), settings.GetString("log.level"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (default: ./opscharts.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("locale", "", "locale of month names and numbers")
	rootCmd.PersistentFlags().Float64("width", 0, "chart width")
	rootCmd.PersistentFlags().Float64("height", 0, "chart height")

	settings.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	settings.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	settings.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	settings.BindPFlag("height", rootCmd.PersistentFlags().Lookup("height"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadSettings(file string) error {
	settings.SetDefault("log.level", "info")
	settings.SetDefault("serve.addr", ":8080")

	settings.SetEnvPrefix("OPSCHARTS")
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()

	if file != "" {
		settings.SetConfigFile(file)
	} else {
		settings.SetConfigName("opscharts")
		settings.SetConfigType("yaml")
		settings.AddConfigPath(".")
	}
	if err := settings.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return fmt.Errorf("reading settings: %w", err)
		}
	}
	return nil
}

func setupLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// applySettings overrides the values of the dashboard that are set from the
// command line, the environment or the settings file. Keys without default
// are only set by one of them.
func applySettings(d *dash.Dashboard) {
	for _, key := range []string{"width", "height", "locale", "parallel"} {
		if !settings.IsSet(key) {
			continue
		}
		switch key {
		case "width":
			d.Width = settings.GetFloat64(key)
		case "height":
			d.Height = settings.GetFloat64(key)
		case "locale":
			d.Locale = settings.GetString(key)
		case "parallel":
			d.Parallel = settings.GetInt(key)
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "draw %s\n", version)
	},
}

var dashCmd = &cobra.Command{
	Use:   "dash FILE",
	Short: "Render all the charts of a dashboard file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dash.Load(args[0])
		if err != nil {
			return err
		}
		applySettings(&d)
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			d.Output = out
		}
		if err := d.Validate(); err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		return dash.Render(ctx, d, logger)
	},
}

func init() {
	dashCmd.Flags().StringP("output", "o", "", "output directory")
	dashCmd.Flags().Int("parallel", 0, "number of charts rendered at the same time")
	settings.BindPFlag("parallel", dashCmd.Flags().Lookup("parallel"))
}

var lineCmd = &cobra.Command{
	Use:   "line FILE",
	Short: "Render the columns of a CSV or XLSX file as a line chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lineChart(cmd, args[0])
		if err != nil {
			return err
		}
		d := dash.Default()
		applySettings(&d)
		d.Charts = append(d.Charts, c)
		if err := d.Validate(); err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if file, _ := cmd.Flags().GetString("output"); file != "" {
			f, err := os.Create(file)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		p, err := dash.RenderChart(cmd.Context(), d, c, w)
		if err != nil {
			return err
		}
		logger.Info("chart rendered", "source", c.Source, "points", p.Points(), "segments", p.Segments())
		return nil
	},
}

func init() {
	lineCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	lineCmd.Flags().String("title", "", "chart title")
	lineCmd.Flags().String("x", "0", "name or index of the x column")
	lineCmd.Flags().StringSlice("y", []string{"1"}, "names or indices of the y columns")
	lineCmd.Flags().Int("xticks", 0, "ticks on x axis")
	lineCmd.Flags().Int("yticks", 0, "ticks on y axis")
	lineCmd.Flags().String("scale", "linear", "scale of the y axis (linear, cbrt)")
	lineCmd.Flags().String("format", dash.FormatSVG, "output format (svg, html)")
	lineCmd.Flags().String("delimiter", dash.DefaultDelim, "field delimiter of CSV files")
	lineCmd.Flags().String("sheet", "", "sheet of XLSX files")
	lineCmd.Flags().Bool("zero", false, "start the y axis at zero")
}

func lineChart(cmd *cobra.Command, file string) (dash.Chart, error) {
	var (
		flags = cmd.Flags()
		c     = dash.Chart{
			Name:   "line",
			Kind:   dash.KindLine,
			Source: file,
		}
		err error
	)
	c.Title, _ = flags.GetString("title")
	c.Format, _ = flags.GetString("format")
	c.Delimiter, _ = flags.GetString("delimiter")
	c.Sheet, _ = flags.GetString("sheet")
	c.Columns.X, _ = flags.GetString("x")
	c.X.Ticks, _ = flags.GetInt("xticks")
	c.Y.Ticks, _ = flags.GetInt("yticks")
	c.Y.Scale, _ = flags.GetString("scale")
	c.Y.Zero, _ = flags.GetBool("zero")
	c.Y.Nice = true

	var ys []string
	if ys, err = flags.GetStringSlice("y"); err != nil {
		return c, err
	}
	c.Columns.Value = dash.Names(ys)
	return c, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve DIR",
	Short: "Serve a directory of rendered charts over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			addr = settings.GetString("serve.addr")
			srv  = http.Server{
				Addr:    addr,
				Handler: http.FileServer(http.Dir(args[0])),
			}
			ctx, cancel = signal.NotifyContext(cmd.Context(), os.Interrupt)
		)
		defer cancel()
		go func() {
			<-ctx.Done()
			srv.Shutdown(context.Background())
		}()
		logger.Info("serving charts", "dir", args[0], "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "listening address")
	settings.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
}
