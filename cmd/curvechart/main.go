// Command curvechart renders curve charts described by config files.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/curveaxis"
	"honnef.co/go/curveaxis/config"
	"honnef.co/go/curveaxis/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "curvechart",
		Short: "Render serpentine, spiral and curve charts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			curveaxis.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log layout details")
	root.AddCommand(newRenderCmd(), newPointsCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var configPath, outputPath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to PNG or SVG",
		Long: `render lays out the chart described by --config and writes it to --output.
The output format follows the file extension: .png or .svg.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := build(configPath)
			if err != nil {
				return err
			}
			return writeScene(outputPath, chart.Scene())
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Chart config file (.toml, .yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "chart.png", "Output file (.png, .svg)")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newPointsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the control points of a chart's path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := build(configPath)
			if err != nil {
				return err
			}
			return writePoints(cmd.OutOrStdout(), chart.XRenderer().Points())
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Chart config file (.toml, .yaml)")
	cmd.MarkFlagRequired("config")
	return cmd
}

func build(path string) (*config.Chart, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	chart, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building chart: %w", err)
	}
	return chart, nil
}

func writeScene(path string, scene *render.Scene) error {
	var write func(io.Writer, *render.Scene) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = render.RasterPNG
	case ".svg":
		write = render.WriteSVG
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, scene); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	curveaxis.Logger().Info("wrote chart", "path", path, "size", scene.Size)
	return nil
}

func writePoints(w io.Writer, pts []curveaxis.Point) error {
	bw := bufio.NewWriter(w)
	for _, pt := range pts {
		fmt.Fprintf(bw, "%g %g\n", pt.X, pt.Y)
	}
	return bw.Flush()
}
