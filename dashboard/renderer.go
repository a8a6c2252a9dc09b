// Package dashboard composes the gathered facts into the header, body and
// footer of the dashboard and prints it once.
package dashboard

import (
	"context"
	"io"
	"time"

	"tdash/errors"
	"tdash/layout"
	"tdash/logger"
	"tdash/sysinfo"
)

// Source gathers the facts for one run.
type Source interface {
	Collect(ctx context.Context) (*sysinfo.Snapshot, error)
}

// Renderer runs the dashboard: it plans the layout, collects the facts,
// composes the view and prints it exactly once. It never retries a source;
// degradation is the collector's job.
type Renderer struct {
	Source Source
	Title  string
	Now    func() time.Time
	Log    logger.Logger

	// ContextOptions are applied to the rendering context of each run.
	ContextOptions []ContextOption
}

// Run renders the dashboard for a terminal of the given width to out.
// Nothing is written when collecting fails.
func (r *Renderer) Run(ctx context.Context, out io.Writer, width int) error {
	log := r.Log
	if log == nil {
		log = logger.Noop()
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	plan := layout.PlanFor(width)
	log.Debug("width %d, layout %s", width, plan)

	snap, err := r.Source.Collect(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"Could not query system resources",
			"Unset TDASH_STRICT to show a placeholder instead of stopping.")
	}

	rc := NewContext(out, width, r.ContextOptions...)
	if err := rc.Print(BuildView(snap, plan, r.Title, now())); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Could not write the dashboard",
			"Check that stdout is writable.")
	}
	return nil
}
