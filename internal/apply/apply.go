// Package apply replays a decoded layout document against the live frame:
// it recreates view and control panels, feeds each container's perspective
// back to its pane manager, and pushes decoded properties onto the panels
// and their auxiliary objects.
package apply

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"voxview/internal/layout"
	"voxview/internal/panel"
)

// Applier replays layout documents. It must be called from the goroutine
// that owns the frame; there is no cancellation, an apply either completes
// or returns an error.
type Applier struct {
	resolver *panel.Resolver
	logger   *log.Logger
	tracer   oteltrace.Tracer
}

// New creates an applier. logger and tracer may be nil.
func New(resolver *panel.Resolver, logger *log.Logger, tracer oteltrace.Tracer) *Applier {
	if logger == nil {
		logger = log.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("voxview/apply")
	}
	return &Applier{resolver: resolver, logger: logger, tracer: tracer}
}

// Apply clears the frame and rebuilds it from doc.
//
// The frame is cleared before anything else, so a failure partway through
// leaves an empty frame, never a half-applied one. Unresolvable types,
// panel construction failures and perspective-load failures are fatal.
// A property that fails to apply is logged and skipped; the rest of the
// apply continues.
func (a *Applier) Apply(ctx context.Context, f layout.Frame, doc *layout.Document) (err error) {
	_, span := a.tracer.Start(ctx, "layout.apply",
		oteltrace.WithAttributes(attribute.Int("layout.views", len(doc.FrameChildren))))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	f.RemoveAllViewPanels()

	views := make([]layout.ViewPanel, 0, len(doc.FrameChildren))
	for i, ref := range doc.FrameChildren {
		t, rerr := a.resolver.Resolve(string(ref), panel.KindView)
		if rerr != nil {
			return fmt.Errorf("apply view %d: %w", i, rerr)
		}
		vp, aerr := f.AddViewPanel(t)
		if aerr != nil {
			return fmt.Errorf("apply view %d (%s): %w", i, t.Name, aerr)
		}
		views = append(views, vp)
	}

	if lerr := f.Manager().LoadPerspective(doc.FrameLayout); lerr != nil {
		return fmt.Errorf("apply frame layout: %w", lerr)
	}

	for i, vp := range views {
		if berr := a.applyBlock(vp, doc.Blocks[i]); berr != nil {
			return fmt.Errorf("apply view %d (%s): %w", i, vp.PanelType().Name, berr)
		}
	}
	return nil
}

func (a *Applier) applyBlock(vp layout.ViewPanel, block layout.ViewBlock) error {
	for _, ref := range block.ChildRefs {
		t, err := a.resolver.Resolve(string(ref), panel.KindControl)
		if err != nil {
			return err
		}
		if _, err := vp.AddControlPanel(t); err != nil {
			return fmt.Errorf("control %s: %w", t.Name, err)
		}
	}

	if err := vp.Manager().LoadPerspective(block.ContainerLayout); err != nil {
		return fmt.Errorf("view layout: %w", err)
	}

	a.applyProps(vp.PanelType().Name, vp.Props(), block.PanelProps)
	if aux := vp.Aux(); aux != nil {
		a.applyProps(vp.PanelType().Name, aux, block.AuxProps)
	} else if len(block.AuxProps) > 0 {
		a.logger.Warn("dropping aux properties, panel kind has no aux object",
			"panel", vp.PanelType().Name, "count", len(block.AuxProps))
	}
	return nil
}

// applyProps pushes properties in document order. Order matters: later
// assignments may rely on side effects of earlier ones.
func (a *Applier) applyProps(panelName string, holder panel.PropertyHolder, props layout.Props) {
	if holder == nil {
		return
	}
	for _, p := range props {
		if err := holder.DeserializeProperty(p.Key, p.Value); err != nil {
			a.logger.Warn("skipping property", "panel", panelName, "property", p.Key, "err", err)
		}
	}
}
