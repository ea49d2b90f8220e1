// Package bench measures how long products take to build and render.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/BigRLab/thedom/internal/logging"
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/resources"
	"github.com/prometheus/client_golang/prometheus"
)

// Result is the cost of building and rendering one product.
type Result struct {
	Product  string
	Duration time.Duration
	Size     int
}

// Report gathers every measurement of a run.
type Report struct {
	// Products is sorted by duration, fastest first.
	Products  []Result
	CreateAll time.Duration

	Loops        int
	LoopedInit   time.Duration
	LoopedRender time.Duration
	LoopedSize   int

	Depth      int
	Nested     time.Duration
	NestedSize int
}

// Slowest returns the product that took longest, if any.
func (r *Report) Slowest() (Result, bool) {
	if len(r.Products) == 0 {
		return Result{}, false
	}
	return r.Products[len(r.Products)-1], true
}

// Metrics exports measurements to Prometheus.
type Metrics struct {
	renderSeconds *prometheus.HistogramVec
	renderBytes   *prometheus.GaugeVec
	built         prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renderSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "thedom_render_duration_seconds",
				Help:    "Time to build and render one product",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"product"},
		),
		renderBytes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "thedom_render_bytes",
				Help: "Size of the markup rendered for one product",
			},
			[]string{"product"},
		),
		built: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "thedom_elements_built_total",
			Help: "Total number of elements built by the benchmark",
		}),
	}
	reg.MustRegister(m.renderSeconds, m.renderBytes, m.built)
	return m
}

// Runner executes the benchmark against a builder.
type Runner struct {
	builder factory.Builder
	loops   int
	depth   int
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLoops sets how many times every product is built for the looped run.
func WithLoops(n int) Option {
	return func(r *Runner) { r.loops = n }
}

// WithDepth sets the depth of the nested tree run.
func WithDepth(n int) Option {
	return func(r *Runner) { r.depth = n }
}

// WithMetrics records measurements in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithLogger sets the logger used for progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner with 100 loops and a depth of 900.
func NewRunner(b factory.Builder, opts ...Option) *Runner {
	r := &Runner{builder: b, loops: 100, depth: 900, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the looped, per product and nested measurements in turn.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{Loops: r.loops, Depth: r.depth}
	if err := r.looped(ctx, report); err != nil {
		return nil, err
	}
	if err := r.single(ctx, report); err != nil {
		return nil, err
	}
	if err := r.nested(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Runner) build(product string) (node.Node, error) {
	n, err := r.builder.Build(product, "Test", "Product")
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", product, err)
	}
	if r.metrics != nil {
		r.metrics.built.Inc()
	}
	return n, nil
}

func (r *Runner) looped(ctx context.Context, report *Report) error {
	start := time.Now()
	all := node.New("div", "AllProducts", "")
	scripts := resources.NewScriptContainer("", "")
	all.SetScriptContainer(scripts)
	for i := 0; i < r.loops; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, product := range r.builder.Products() {
			n, err := r.build(product)
			if err != nil {
				return err
			}
			if err := all.AddChild(n); err != nil {
				return err
			}
		}
		r.logger.Debug("loop done", "loop", i+1)
	}
	report.LoopedInit = time.Since(start)

	start = time.Now()
	html := all.ToHTML(false) + scripts.ToHTML(false)
	report.LoopedRender = time.Since(start)
	report.LoopedSize = len(html)
	return nil
}

func (r *Runner) single(ctx context.Context, report *Report) error {
	for _, product := range r.builder.Products() {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		n, err := r.build(product)
		if err != nil {
			return err
		}
		scripts := resources.NewScriptContainer("", "")
		n.Base().SetScriptContainer(scripts)
		html := n.ToHTML(false) + scripts.ToHTML(false)
		elapsed := time.Since(start)

		report.CreateAll += elapsed
		report.Products = append(report.Products, Result{Product: product, Duration: elapsed, Size: len(html)})
		if r.metrics != nil {
			r.metrics.renderSeconds.WithLabelValues(product).Observe(elapsed.Seconds())
			r.metrics.renderBytes.WithLabelValues(product).Set(float64(len(html)))
		}
	}
	sort.SliceStable(report.Products, func(i, j int) bool {
		return report.Products[i].Duration < report.Products[j].Duration
	})
	return nil
}

func (r *Runner) nested(ctx context.Context, report *Report) error {
	start := time.Now()
	root := node.New("root", "root", "")
	var current node.Node = root
	size := 0
	for i := 0; i < r.depth; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		child := node.New(fmt.Sprintf("tag%d", i), fmt.Sprintf("element%d", i), "")
		if err := current.AddChild(child); err != nil {
			return err
		}
		current = child
		size += len(child.ToHTML(false))
	}
	report.Nested = time.Since(start)
	report.NestedSize = size
	return nil
}
