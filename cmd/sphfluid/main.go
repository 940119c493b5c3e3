package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"sphfluid/internal/analysis"
	"sphfluid/internal/automation"
	"sphfluid/internal/config"
	"sphfluid/internal/experiment"
	"sphfluid/internal/export"
	"sphfluid/internal/optim"
	"sphfluid/internal/storage"
	"sphfluid/internal/tui"
	"sphfluid/internal/viz"
)

var (
	dataDir    string
	record     bool
	scriptFile string
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepN     int
)

// main is the entry point for the sphfluid CLI: it registers commands and
// flags, launches the interactive viewer when no subcommand is given, and
// executes the root command.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sphfluid",
		Short: "weakly-compressible SPH fluid solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphfluid", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario to completion",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().BoolVar(&record, "record", false, "record a particle-cloud snapshot per step")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the interactive live viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list scenarios and fluid presets",
		RunE:  listAll,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run's final frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark a scenario across a grid of dt/duration",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScenario,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "dominant-frequency analysis of a run's kinetic energy",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "sweep a solver parameter and report energy drift / stability",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepScenario,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "gas_constant", "smoothing_len or gas_constant")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1.0, "sweep range minimum")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 6.0, "sweep range maximum")
	sweepCmd.Flags().IntVar(&sweepN, "steps", 5, "number of sweep points")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a scripted sequence of scenarios from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	optimizeCmd := &cobra.Command{
		Use:   "optimize [scenario]",
		Short: "grid-search smoothing length and gas constant for minimum energy drift",
		Args:  cobra.ExactArgs(1),
		RunE:  optimizeScenario,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, exportCmd, benchCmd, analyzeCmd, sweepCmd, scriptCmd, optimizeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := experiment.NewRegistry()
	exp, err := registry.Build(name, record)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s...\n", name)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	cfg, _ := config.GetScenario(name)
	var seed int64
	var dt, duration float64
	if cfg != nil {
		seed, dt, duration = cfg.Seed, cfg.Dt, cfg.Duration
	}

	runID, err := st.Save(name, seed, dt, duration, result.Steps, result.Metrics, result.InfoLog, result.Snapshots)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d  particles: %d\n", result.Steps, result.Particles)
	fmt.Println("\nmetrics:")
	for metricName, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", metricName, val)
	}
	return nil
}

func listAll(cmd *cobra.Command, args []string) error {
	fmt.Println("scenarios:")
	for _, name := range experiment.NewRegistry().ListScenarios() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("\nfluid presets:")
	for _, name := range config.ListFluids() {
		fmt.Printf("  %s\n", name)
	}

	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}
	fmt.Println("\nrecorded runs:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tPARTICLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID, run.Scenario, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration, run.Dt, run.Particles)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	cfg, ok := config.GetScenario(meta.Scenario)
	if !ok {
		cfg = config.DefaultConfig()
	}
	exp, err := experiment.New(cfg, true)
	if err != nil {
		return err
	}
	if _, err := exp.Run(context.Background()); err != nil {
		return err
	}

	canvas := viz.NewCanvas(120, 60)
	wf := viz.NewWireframe()
	domain := exp.Solver().Params().Domain
	for _, p := range exp.Solver().Positions() {
		x := (p.X/domain.X)*2 - 1
		y := (p.Y/domain.Y)*2 - 1
		z := (p.Z/domain.Z)*2 - 1
		wf.AddPoint(viz.Vec3{X: x, Y: y, Z: z}, '*')
	}
	viz.Render3D(canvas, wf, viz.NewCamera())

	svg := export.CanvasToSVG(canvas, 6)
	fmt.Println(svg)
	return nil
}

func benchScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	base, ok := config.GetScenario(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}

	durations := []float64{0.5, 1.0, 2.0}
	dts := []float64{0.0008, 0.0016, 0.0032}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, dt := range dts {
			cfg := *base
			cfg.Duration = dur
			cfg.Dt = dt

			exp, err := experiment.New(&cfg, false)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.Steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n", dur, dt, result.Steps, elapsed, stepsPerSec)
		}
	}
	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	cfg, ok := config.GetScenario(meta.Scenario)
	if !ok {
		cfg = config.DefaultConfig()
	}
	exp, err := experiment.New(cfg, false)
	if err != nil {
		return err
	}

	n := int(cfg.Duration / cfg.Dt)
	series := make([]float64, 0, n)
	solver := exp.Solver()
	for i := 0; i < n; i++ {
		solver.Step()
		var ke float64
		for _, v := range solver.Velocities() {
			ke += v.X*v.X + v.Y*v.Y + v.Z*v.Z
		}
		series = append(series, ke)
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	ps := analysis.PowerSpectrum(series)
	plotData := ps[:len(ps)/4+1]
	graph := asciigraph.Plot(plotData, asciigraph.Height(15), asciigraph.Width(80), asciigraph.Caption("kinetic energy power spectrum"))
	fmt.Println(graph)

	freq := analysis.DominantFrequency(series, cfg.Dt)
	fmt.Printf("\ndominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func sweepScenario(cmd *cobra.Command, args []string) error {
	results, err := automation.RunSweep(context.Background(), &automation.ParameterSweep{
		Scenario:  args[0],
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepN,
		Duration:  1.0,
		Dt:        config.DefaultDt,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tENERGY_DRIFT\tSTABILITY\n", sweepParam)
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.4f\n", r.ParamValue, r.EnergyDrift, r.Stability)
	}
	return w.Flush()
}

func runScript(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	results, err := automation.RunScenario(context.Background(), scenario, registry)
	if err != nil {
		return err
	}

	for i, result := range results {
		fmt.Printf("step %d: steps=%d particles=%d\n", i+1, result.Steps, result.Particles)
		for name, val := range result.Metrics {
			fmt.Printf("  %s: %.6f\n", name, val)
		}
	}
	return nil
}

func optimizeScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	base, ok := config.GetScenario(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}

	search := optim.NewGridSearch(
		[]string{"smoothing_len", "gas_constant"},
		[][]float64{{0.03, 0.045, 0.06}, {1.0, 3.0, 6.0}},
	)

	build := func(params map[string]float64) (*config.Config, error) {
		cfg := *base
		cfg.Duration = 1.0
		cfg.SmoothingLen = params["smoothing_len"]
		cfg.GasConstant = params["gas_constant"]
		return &cfg, nil
	}

	best, score, err := search.Search(context.Background(), build, "energy_drift")
	if err != nil {
		return err
	}

	fmt.Printf("best parameters for %s (min energy_drift=%.6f):\n", name, score)
	for k, v := range best {
		fmt.Printf("  %s: %.4f\n", k, v)
	}
	return nil
}
