package main

import (
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qdynlab/qdyn/internal/arraylias"
	"github.com/qdynlab/qdyn/internal/backends"
	"github.com/qdynlab/qdyn/internal/config"
	"github.com/qdynlab/qdyn/internal/models"
	"github.com/qdynlab/qdyn/internal/solver"
	"github.com/qdynlab/qdyn/internal/storage"
	"github.com/qdynlab/qdyn/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	method     string
	t0, t1     float64
	tEvalStr   string
	rtol, atol float64
	dt0        float64
	maxSteps   int
	paramFlags []string
	gridPoints int
	doPlot     bool
	doLive     bool
	doSave     bool
	exportOut  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qdyn",
		Short: "adaptive ODE solving over pluggable array backends",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qdyn", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [model]",
		Short: "integrate a model over a time span",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	solveCmd.Flags().StringVar(&method, "method", "dopri5", "integration method")
	solveCmd.Flags().Float64Var(&t0, "t0", 0.0, "span start")
	solveCmd.Flags().Float64Var(&t1, "t1", 10.0, "span end")
	solveCmd.Flags().StringVar(&tEvalStr, "teval", "", "comma-separated output times")
	solveCmd.Flags().Float64Var(&rtol, "rtol", 1e-8, "relative tolerance")
	solveCmd.Flags().Float64Var(&atol, "atol", 1e-8, "absolute tolerance")
	solveCmd.Flags().Float64Var(&dt0, "dt0", 0, "initial step size (0 = auto)")
	solveCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step budget (0 = default)")
	solveCmd.Flags().StringArrayVar(&paramFlags, "param", nil, "model parameter name=value")
	solveCmd.Flags().IntVar(&gridPoints, "grid", 200, "plot grid size when no teval given")
	solveCmd.Flags().BoolVar(&doPlot, "plot", false, "plot result")
	solveCmd.Flags().BoolVar(&doLive, "live", false, "live replay of the trajectory")
	solveCmd.Flags().BoolVar(&doSave, "save", false, "persist the run")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models",
		RunE:  listModels,
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list registered array backends and types",
		RunE:  listBackends,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "run.json", "output path")

	rootCmd.AddCommand(solveCmd, modelsCmd, backendsCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) == 1 && preset != "" {
		if p := config.GetPreset(args[0], preset); p != nil {
			cfg = p
		} else {
			return nil, fmt.Errorf("no preset %q for model %q", preset, args[0])
		}
	} else if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Model = args[0]
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("t0") {
		cfg.Span[0] = t0
	}
	if cmd.Flags().Changed("t1") {
		cfg.Span[1] = t1
	}
	if cmd.Flags().Changed("rtol") {
		cfg.Rtol = rtol
	}
	if cmd.Flags().Changed("atol") {
		cfg.Atol = atol
	}
	if cmd.Flags().Changed("dt0") {
		cfg.Dt0 = dt0
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if cmd.Flags().Changed("teval") {
		tEval, err := parseFloats(tEvalStr)
		if err != nil {
			return nil, err
		}
		cfg.TEval = tEval
	}
	for _, pf := range paramFlags {
		name, value, ok := strings.Cut(pf, "=")
		if !ok {
			return nil, fmt.Errorf("bad --param %q, want name=value", pf)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		cfg.Params[name] = v
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	rhs, y0, err := models.Get(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}

	tEval := cfg.TEval
	if len(tEval) == 0 && (doPlot || doLive || doSave) {
		tEval = linspace(cfg.Span[0], cfg.Span[1], gridPoints)
	}

	res, err := solver.Solve(rhs, cfg.Span, y0, solver.Config{
		Method:   cfg.Method,
		TEval:    tEval,
		Rtol:     cfg.Rtol,
		Atol:     cfg.Atol,
		Dt0:      cfg.Dt0,
		MaxSteps: cfg.MaxSteps,
	})
	if err != nil {
		return err
	}

	labels, rows := realRows(res)

	if doPlot || doLive {
		caption := fmt.Sprintf("%s  t=[%g, %g]  %s", cfg.Model, cfg.Span[0], cfg.Span[1], cfg.Method)
		if doLive {
			if err := viz.RunLive(caption, labels, res.T, rows); err != nil {
				return err
			}
		} else {
			series := make([][]float64, len(labels))
			for j := range labels {
				series[j] = make([]float64, len(rows))
				for i := range rows {
					series[j][i] = rows[i][j]
				}
			}
			fmt.Println(viz.Plot(series, 72, 16, caption))
		}
	} else {
		printTable(res.T, labels, rows)
	}

	fmt.Printf("steps=%d accepted=%d rejected=%d evals=%d\n",
		res.Stats.Steps, res.Stats.Accepted, res.Stats.Rejected, res.Stats.Evals)

	if doSave {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(storage.RunMetadata{
			Model:  cfg.Model,
			Method: cfg.Method,
			Span:   cfg.Span,
			Rtol:   cfg.Rtol,
			Atol:   cfg.Atol,
			Stats:  res.Stats,
		}, res.T, rows)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}

	return nil
}

// realRows flattens the stacked result into real-valued rows for
// tables, plots, and csv. Complex states are reported as populations
// (squared moduli).
func realRows(res *solver.Result) ([]string, [][]float64) {
	n := len(res.T)
	switch y := res.Y.(type) {
	case *backends.Dense:
		d := y.Len() / n
		labels := make([]string, d)
		for j := range labels {
			labels[j] = fmt.Sprintf("y%d", j)
		}
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = y.Data()[i*d : (i+1)*d]
		}
		return labels, rows
	case *backends.CDense:
		d := y.Len() / n
		labels := make([]string, d)
		for j := range labels {
			labels[j] = fmt.Sprintf("p%d", j)
		}
		rows := make([][]float64, n)
		for i := range rows {
			row := make([]float64, d)
			for j := range row {
				a := cmplx.Abs(y.Data()[i*d+j])
				row[j] = a * a
			}
			rows[i] = row
		}
		return labels, rows
	default:
		return nil, nil
	}
}

func printTable(times []float64, labels []string, rows [][]float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "t\t%s\n", strings.Join(labels, "\t"))
	for i, t := range times {
		fields := make([]string, len(rows[i]))
		for j, v := range rows[i] {
			fields[j] = strconv.FormatFloat(v, 'g', 8, 64)
		}
		fmt.Fprintf(w, "%g\t%s\n", t, strings.Join(fields, "\t"))
	}
	w.Flush()
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tDESCRIPTION\tPRESETS")
	for _, name := range models.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, models.Describe(name), strings.Join(config.ListPresets(name), ","))
	}
	return w.Flush()
}

func listBackends(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tBACKENDS\tTYPES")
	for _, reg := range []*arraylias.Registry{arraylias.Numeric, arraylias.Linear} {
		types := make([]string, 0)
		for _, rt := range reg.RegisteredTypes() {
			types = append(types, rt.String())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", reg.Name(), strings.Join(reg.Backends(), ","), strings.Join(types, ","))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tMETHOD\tSPAN\tSTEPS\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\t%s\n",
			run.ID, run.Model, run.Method, run.Span[0], run.Span[1],
			run.Stats.Steps, run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	if err := store.ExportJSON(args[0], exportOut); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], exportOut)
	return nil
}

func parseFloats(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// linspace builds a strictly monotonic n-point grid from a to b, both
// endpoints exact.
func linspace(a, b float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}
