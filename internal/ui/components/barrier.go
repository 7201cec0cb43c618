package components

import (
	"github.com/alexisbeaulieu97/lumen/internal/ui"
	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// BarrierFallback is the marker drawn in place of a failed subtree.
const BarrierFallback = "⚠ unavailable"

// Barrier isolates rendering failures in its child. A panic or a RenderE error
// is recorded once; from then on the barrier draws BarrierFallback without
// running the child again until Reset is called.
type Barrier struct {
	name    string
	child   ui.Renderable
	failure error
}

// NewBarrier wraps child. name identifies the subtree in logs and errors.
func NewBarrier(name string, child ui.Renderable) *Barrier {
	return &Barrier{name: name, child: child}
}

// View renders with DefaultContext.
func (b *Barrier) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child, or the fallback if it has failed.
func (b *Barrier) ViewWithContext(ctx RenderContext) string {
	if b.failure != nil {
		return b.fallback(ctx)
	}

	out, err := b.capture(ctx)
	if err != nil {
		b.failure = err
		ctx.Log.Error(err, "subtree render failed, showing fallback", "subtree", b.name)
		return b.fallback(ctx)
	}
	return out
}

func (b *Barrier) capture(ctx RenderContext) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = apperrors.NewRenderError(b.name, r)
		}
	}()
	return render(b.child, ctx), nil
}

func (b *Barrier) fallback(ctx RenderContext) string {
	return NewText(BarrierFallback).WithAppliers(Foreground(PaletteDanger)).ViewWithContext(ctx)
}

// Failed reports whether the child has failed since the last Reset.
func (b *Barrier) Failed() bool {
	return b.failure != nil
}

// Err returns the contained failure, if any.
func (b *Barrier) Err() error {
	return b.failure
}

// Reset clears the recorded failure and optionally swaps the child. Passing
// nil keeps the current child.
func (b *Barrier) Reset(child ui.Renderable) {
	if child != nil {
		b.child = child
	}
	b.failure = nil
}
