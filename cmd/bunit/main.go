package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bunit/internal/analysis"
	"github.com/san-kum/bunit/internal/config"
	"github.com/san-kum/bunit/internal/fire"
	"github.com/san-kum/bunit/internal/metrics"
	"github.com/san-kum/bunit/internal/sim"
	"github.com/san-kum/bunit/internal/storage"
	"github.com/san-kum/bunit/internal/viz"
)

var (
	dataDir    string
	frames     int
	width      int
	height     int
	seed       int64
	configFile string
	preset     string
)

// main registers the CLI. The bare command is the animation itself; the
// subcommands are headless tooling around the same engine.
func main() {
	rootCmd := &cobra.Command{
		Use:   "bunit",
		Short: "classic ASCII fire for the terminal",
		Long:  "Renders the BUNIT heat-diffusion fire full screen.\nPress any key to stop.",
		RunE:  runAnimation,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bunit", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the fire headless and record the heat series",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	runCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	runCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the heat series of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "fit the decay rate of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark diffusion throughput",
		RunE:  benchDiffusion,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnimation(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(viz.NewModel(viz.PaletteClassic), tea.WithAltScreen())

	final, err := p.Run()

	count := 0
	if m, ok := final.(viz.Model); ok {
		count = m.Frames()
	}

	// A key press or an interrupt both count as a normal stop; only a
	// failure to drive the terminal at all propagates.
	if err != nil && !errors.Is(err, tea.ErrInterrupted) && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	fmt.Printf("\n🔥 BUNIT Animation stopped after %d frames\n", count)
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file.
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("frames") {
		cfg.Frames = frames
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	s, err := fire.NewWithSource(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	if err := s.SetSeedHeat(cfg.Flame.SeedHeat); err != nil {
		return err
	}
	if err := s.SetInjectDivisor(cfg.Flame.InjectDivisor); err != nil {
		return err
	}

	runner := sim.New(s)
	runner.AddMetric(metrics.NewTotalHeat())
	runner.AddMetric(metrics.NewPeakHeat())
	runner.AddMetric(metrics.NewActiveCells())

	fmt.Printf("running %dx%d fire for %d frames...\n", cfg.Width, cfg.Height, cfg.Frames)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{Frames: cfg.Frames})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Width, cfg.Height, seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tFRAMES\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Frames,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series.HeatSums) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("samples: %d\n\n", len(series.HeatSums))

	graph := asciigraph.Plot(series.HeatSums,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total heat vs frame"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(series.ActiveCells,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("active cell fraction vs frame"),
	)
	fmt.Println(graph)

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series.HeatSums) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("decay analysis: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d\n\n", meta.Width, meta.Height)

	graph := asciigraph.Plot(series.HeatSums,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("total heat vs frame"),
	)
	fmt.Println(graph)
	fmt.Println()

	stats := analysis.DecayRate(series.HeatSums)
	fmt.Printf("mean frame-to-frame factor: %.4f\n", stats.MeanFactor)
	if stats.MeanFactor < 1 {
		fmt.Printf("half-life: %.1f frames\n", stats.HalfLife)
	} else {
		fmt.Println("steady state: injection balances decay")
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series.HeatSums) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"frame", "heat_sum", "peak_heat", "active_cells"}); err != nil {
		return err
	}

	for i := range series.HeatSums {
		row := []string{
			strconv.Itoa(series.Frames[i]),
			strconv.FormatFloat(series.HeatSums[i], 'f', 0, 64),
			strconv.FormatFloat(series.PeakHeat[i], 'f', 0, 64),
			strconv.FormatFloat(series.ActiveCells[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, series)
}

func benchDiffusion(cmd *cobra.Command, args []string) error {
	sizes := []struct {
		width, height int
	}{
		{80, 24},
		{160, 48},
		{320, 96},
	}
	const benchFrames = 1000

	fmt.Println("benchmarking diffusion")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tFRAMES\tTIME\tFRAMES/SEC")

	for _, size := range sizes {
		s, err := fire.NewWithSource(size.width, size.height, rand.New(rand.NewSource(42)))
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < benchFrames; i++ {
			s.Step()
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
			size.width, size.height, benchFrames, elapsed,
			float64(benchFrames)/elapsed.Seconds())
	}

	return w.Flush()
}
