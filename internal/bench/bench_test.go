package bench

import (
	"context"
	"testing"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory() *factory.Factory {
	return factory.New("Test").
		Add("Div", func(id, name string) node.Node { return node.New("div", id, name) }).
		Add("Scripted", func(id, name string) node.Node {
			e := node.New("span", id, name)
			e.AddScript(node.JS("init();"))
			return e
		})
}

func TestRunner_Run(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	r := NewRunner(testFactory(), WithLoops(3), WithDepth(4), WithMetrics(metrics))

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Products, 2)
	assert.Equal(t, 3, report.Loops)
	assert.Greater(t, report.LoopedSize, 0)

	for _, res := range report.Products {
		if res.Product == "Scripted" {
			assert.Equal(t, len(`<span name="Product" id="Test"></span><script type="text/javascript">init();</script>`), res.Size)
		}
	}
	_, ok := report.Slowest()
	assert.True(t, ok)

	// <tag0 name="element0" id="element0">...</tag0> nested four deep
	assert.Greater(t, report.NestedSize, 0)

	// 3 loops of 2 products, then 2 single builds
	assert.Equal(t, float64(8), testutil.ToFloat64(metrics.built))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.renderBytes))
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(testFactory()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_SlowestEmpty(t *testing.T) {
	_, ok := (&Report{}).Slowest()
	assert.False(t, ok)
}
