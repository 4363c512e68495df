package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/born-ml/stride/internal/backend/cpu"
	"github.com/born-ml/stride/internal/envconfig"
	"github.com/born-ml/stride/internal/operators"
	"github.com/born-ml/stride/internal/scalar"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var unaryFuncs = map[string]tensor.UnaryFunc{
	"id":      operators.ID,
	"neg":     operators.Neg,
	"inv":     operators.Inv,
	"exp":     operators.Exp,
	"log":     operators.Log,
	"sigmoid": operators.Sigmoid,
	"relu":    operators.ReLU,
}

var binaryFuncs = map[string]tensor.BinaryFunc{
	"add": operators.Add,
	"mul": operators.Mul,
	"lt":  operators.LT,
	"eq":  operators.EQ,
	"max": operators.Max,
}

var scalarFuncs = map[string]func(x *scalar.Scalar) *scalar.Scalar{
	"neg":     (*scalar.Scalar).Neg,
	"inv":     func(x *scalar.Scalar) *scalar.Scalar { return scalar.New(1).Div(x) },
	"exp":     (*scalar.Scalar).Exp,
	"log":     (*scalar.Scalar).Log,
	"sigmoid": (*scalar.Scalar).Sigmoid,
	"relu":    (*scalar.Scalar).ReLU,
	"square":  func(x *scalar.Scalar) *scalar.Scalar { return x.Mul(x) },
}

// cli holds state shared by every command.
type cli struct {
	logLevel    string
	noFastPath  bool
	dumpMetrics bool
	table       bool
	backend     *cpu.CPUBackend
}

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "stride",
		Short:        "Strided tensor kernels and autodiff",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if c.dumpMetrics {
				return logMetrics(prometheus.DefaultGatherer)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&c.noFastPath, "no-fast-path", false, "Force the general index-translating kernel path")
	root.PersistentFlags().BoolVar(&c.dumpMetrics, "metrics", false, "Log kernel metrics after the command runs")
	root.PersistentFlags().BoolVar(&c.table, "table", false, "Print results as a table, one row per innermost vector")

	root.AddCommand(
		versionCmd(),
		broadcastCmd(),
		c.mapCmd(),
		c.zipCmd(),
		c.reduceCmd(),
		gradCmd(),
	)
	return root
}

// setup resolves flags against STRIDE_* environment settings and builds the
// backend. Flags that were set explicitly win.
func (c *cli) setup(cmd *cobra.Command) error {
	level := c.logLevel
	if !cmd.Flags().Changed("log-level") && envconfig.Debug() {
		level = "debug"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	noFast := c.noFastPath
	if !cmd.Flags().Changed("no-fast-path") {
		noFast = envconfig.NoFastPath()
	}

	cfg := cpu.DefaultConfig()
	cfg.FastPath = !noFast
	cfg.Logger = log.Logger
	c.backend = cpu.NewWithConfig(cfg)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stride %s\n", version)
		},
	}
}

func broadcastCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "broadcast SHAPE SHAPE",
		Short:   "Print the shape two operands broadcast to",
		Example: "  stride broadcast 3,1 1,4",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseShape(args[0])
			if err != nil {
				return err
			}
			b, err := parseShape(args[1])
			if err != nil {
				return err
			}
			shape, err := tensor.BroadcastShape(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatShape(shape))
			return nil
		},
	}
}

func (c *cli) mapCmd() *cobra.Command {
	var fn, shape, data, outShape string

	cmd := &cobra.Command{
		Use:     "map",
		Short:   "Apply a unary function elementwise",
		Example: "  stride map --fn relu --shape 2,2 --data -1,2,-3,4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookup(unaryFuncs, fn)
			if err != nil {
				return err
			}
			a, err := parseTensor(data, shape)
			if err != nil {
				return err
			}

			var out *tensor.RawTensor
			if outShape != "" {
				s, err := parseShape(outShape)
				if err != nil {
					return err
				}
				if out, err = tensor.NewRaw(s); err != nil {
					return err
				}
			}

			result, err := c.backend.Map(f)(a, out)
			if err != nil {
				return err
			}
			c.printTensor(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "id", "Function: "+names(unaryFuncs))
	cmd.Flags().StringVar(&shape, "shape", "", "Input shape, e.g. 2,3")
	cmd.Flags().StringVar(&data, "data", "", "Input values in row-major order")
	cmd.Flags().StringVar(&outShape, "out-shape", "", "Output shape the input broadcasts into")
	return cmd
}

func (c *cli) zipCmd() *cobra.Command {
	var fn, a, aShape, b, bShape string

	cmd := &cobra.Command{
		Use:     "zip",
		Short:   "Apply a binary function elementwise with broadcasting",
		Example: "  stride zip --fn add --a 1,2,3,4 --a-shape 2,2 --b 10,20 --b-shape 2,1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookup(binaryFuncs, fn)
			if err != nil {
				return err
			}
			x, err := parseTensor(a, aShape)
			if err != nil {
				return err
			}
			y, err := parseTensor(b, bShape)
			if err != nil {
				return err
			}

			result, err := c.backend.Zip(f)(x, y)
			if err != nil {
				return err
			}
			c.printTensor(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "add", "Function: "+names(binaryFuncs))
	cmd.Flags().StringVar(&a, "a", "", "First operand values")
	cmd.Flags().StringVar(&aShape, "a-shape", "", "First operand shape")
	cmd.Flags().StringVar(&b, "b", "", "Second operand values")
	cmd.Flags().StringVar(&bShape, "b-shape", "", "Second operand shape")
	return cmd
}

func (c *cli) reduceCmd() *cobra.Command {
	var fn, shape, data, dims string
	var start float64

	cmd := &cobra.Command{
		Use:     "reduce",
		Short:   "Fold a binary function along dimensions",
		Example: "  stride reduce --fn add --dims 1 --shape 2,3 --data 1,2,3,4,5,6",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookup(binaryFuncs, fn)
			if err != nil {
				return err
			}
			a, err := parseTensor(data, shape)
			if err != nil {
				return err
			}
			var axes []int
			if dims != "" {
				if axes, err = parseInts(dims); err != nil {
					return err
				}
			}

			result, err := c.backend.Reduce(f, start)(a, axes, nil)
			if err != nil {
				return err
			}
			c.printTensor(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "add", "Function: "+names(binaryFuncs))
	cmd.Flags().Float64Var(&start, "start", 0, "Initial accumulator value")
	cmd.Flags().StringVar(&dims, "dims", "", "Dimensions to reduce (default all)")
	cmd.Flags().StringVar(&shape, "shape", "", "Input shape")
	cmd.Flags().StringVar(&data, "data", "", "Input values in row-major order")
	return cmd
}

func gradCmd() *cobra.Command {
	var fn string
	var x float64

	cmd := &cobra.Command{
		Use:     "grad",
		Short:   "Differentiate a scalar function and compare with a central difference",
		Example: "  stride grad --fn sigmoid --x 0.5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookup(scalarFuncs, fn)
			if err != nil {
				return err
			}

			in := scalar.New(x)
			out := f(in)
			out.Backward()

			numeric := scalar.CentralDifference(func(v ...float64) float64 {
				return f(scalar.New(v[0])).Data
			}, []float64{x}, 0, scalar.DefaultEpsilon)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "f(%g) = %g\n", x, out.Data)
			fmt.Fprintf(w, "backward:           %g\n", in.Derivative)
			fmt.Fprintf(w, "central difference: %g\n", numeric)
			return scalar.DerivativeCheck(func(in ...*scalar.Scalar) *scalar.Scalar { return f(in[0]) }, scalar.New(x))
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "square", "Function: "+names(scalarFuncs))
	cmd.Flags().Float64Var(&x, "x", 1, "Point to differentiate at")
	return cmd
}

// logMetrics logs every stride_* counter in g.
func logMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "stride_") {
			logFamily(mf)
		}
	}
	return nil
}

func logFamily(mf *dto.MetricFamily) {
	for _, m := range mf.GetMetric() {
		ev := log.Info().Str("metric", mf.GetName())
		for _, lp := range m.GetLabel() {
			ev = ev.Str(lp.GetName(), lp.GetValue())
		}
		ev.Float64("value", m.GetCounter().GetValue()).Msg("metric")
	}
}

func lookup[F any](funcs map[string]F, name string) (F, error) {
	f, ok := funcs[name]
	if !ok {
		var zero F
		return zero, fmt.Errorf("unknown function %q (want one of %s)", name, names(funcs))
	}
	return f, nil
}

func names[F any](funcs map[string]F) string {
	keys := make([]string, 0, len(funcs))
	for k := range funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseShape(s string) (tensor.Shape, error) {
	dims, err := parseInts(s)
	if err != nil {
		return nil, err
	}
	shape := tensor.Shape(dims)
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// parseTensor builds a tensor from comma-separated values. An empty shape
// means a 1D tensor of all the values.
func parseTensor(data, shape string) (*tensor.RawTensor, error) {
	if data == "" {
		return nil, fmt.Errorf("no data given")
	}
	vals, err := parseFloats(data)
	if err != nil {
		return nil, err
	}
	s := tensor.Shape{len(vals)}
	if shape != "" {
		if s, err = parseShape(shape); err != nil {
			return nil, err
		}
	}
	return tensor.RawFromSlice(vals, s)
}

func formatShape(s tensor.Shape) string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (c *cli) printTensor(cmd *cobra.Command, t *tensor.RawTensor) {
	vals := t.Values()
	shape := t.Shape()
	if c.table && len(shape) > 0 && shape[len(shape)-1] > 0 {
		printTable(cmd, shape, vals)
		return
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "shape %s: [%s]\n", formatShape(shape), strings.Join(parts, " "))
}

// printTable renders vals with the innermost dimension as columns and one
// row per index of the leading dimensions.
func printTable(cmd *cobra.Command, shape tensor.Shape, vals []float64) {
	cols := shape[len(shape)-1]
	lead := shape[:len(shape)-1]

	header := make([]string, 0, cols+1)
	header = append(header, "INDEX")
	for j := range cols {
		header = append(header, strconv.Itoa(j))
	}

	index := make([]int, len(lead))
	data := make([][]string, 0, len(vals)/cols)
	for r := range len(vals) / cols {
		tensor.Count(r, lead, index)
		row := make([]string, 0, cols+1)
		row = append(row, formatShape(tensor.Shape(index)))
		for _, v := range vals[r*cols : (r+1)*cols] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		data = append(data, row)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()
}
