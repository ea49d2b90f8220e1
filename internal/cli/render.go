package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BigRLab/thedom"
	"github.com/yosssi/gohtml"
)

// RenderOptions controls how a template is turned into markup.
type RenderOptions struct {
	Template  string
	Vars      map[string]any
	Formatted bool
	// Pretty reindents the output with gohtml; it implies Formatted.
	Pretty bool
}

// Render writes the markup of one template to w.
func Render(ctx context.Context, eng *thedom.Engine, opts RenderOptions, w io.Writer) error {
	html, err := eng.Render(ctx, opts.Template, opts.Vars, opts.Formatted || opts.Pretty)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", opts.Template, err)
	}
	if opts.Pretty {
		html = gohtml.Format(html)
	}
	if !strings.HasSuffix(html, "\n") {
		html += "\n"
	}
	_, err = io.WriteString(w, html)
	return err
}
