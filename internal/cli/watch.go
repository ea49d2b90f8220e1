package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/BigRLab/thedom"
)

// settleDelay lets editors finish writing before a template is reloaded.
var settleDelay = 100 * time.Millisecond

// Watch renders the template once, then again every time the repository
// reports a change, until ctx is cancelled. Render failures are reported
// and the watcher keeps waiting for a fix.
func Watch(ctx context.Context, eng *thedom.Engine, opts RenderOptions, w io.Writer) error {
	logger := eng.Logger()

	events, err := eng.Watch(ctx)
	if err != nil {
		return err
	}

	render := func() {
		if err := Render(ctx, eng, opts, w); err != nil {
			logger.Error("render failed", "template", opts.Template, "err", err)
			fmt.Fprintf(w, "<!-- %v -->\n", err)
		}
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			logger.Info("change detected", "event", event)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settleDelay):
			}
			render()
		}
	}
}
