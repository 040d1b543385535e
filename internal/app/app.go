// Package app implements the application layer for varcss.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.trai.ch/varcss/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/varcss/internal/engine/cssparse"
	"go.trai.ch/varcss/internal/engine/export"
	"go.trai.ch/varcss/internal/engine/materialize"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Reloader re-reads host state after the document changed on disk.
type Reloader interface {
	Reload() error
}

// App represents the main application logic.
type App struct {
	renderer     *export.Renderer
	materializer *materialize.Materializer
	store        ports.DocumentStore
	reloader     Reloader
	watcher      ports.Watcher
	server       *shell.Server
	tracer       ports.Tracer
	logger       ports.Logger
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	renderer *export.Renderer,
	materializer *materialize.Materializer,
	store ports.DocumentStore,
	reloader Reloader,
	w ports.Watcher,
	server *shell.Server,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		renderer:     renderer,
		materializer: materializer,
		store:        store,
		reloader:     reloader,
		watcher:      w,
		server:       server,
		tracer:       tracer,
		logger:       log,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// Export renders the CSS for req.
func (a *App) Export(ctx context.Context, req domain.ExportRequest) (domain.ExportResponse, error) {
	ctx, span := a.tracer.Start(ctx, "export")
	defer span.End()
	span.SetAttribute("root", req.RootCollectionID)
	span.SetAttribute("theme", req.ThemeCollectionID)

	css, err := a.renderer.Render(ctx, req)
	if err != nil {
		span.RecordError(err)
		return domain.ExportResponse{}, zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	return domain.ExportResponse{CSSText: css}, nil
}

// Import materializes the CSS text of req into the host document. The
// response is always usable; the error is set when the import was aborted.
func (a *App) Import(ctx context.Context, req domain.ImportRequest) (domain.ImportResponse, error) {
	ctx, span := a.tracer.Start(ctx, "import")
	defer span.End()

	sheet := cssparse.Parse(req.CSSText)
	span.SetAttribute("collections", len(sheet.Collections))
	span.SetAttribute("declarations", sheet.DeclarationCount())

	report, err := a.materializer.Materialize(ctx, sheet)
	if err != nil {
		span.RecordError(err)
		return domain.ImportResponse{
			Status:  domain.ImportError,
			Message: "Import failed: " + err.Error(),
		}, err
	}

	span.SetAttribute("values_assigned", report.ValuesAssigned)
	span.SetAttribute("failures", report.FailureCount)

	msg := fmt.Sprintf("Imported %d variables into %d collection(s)",
		report.VariablesCreated+report.VariablesMatched, len(sheet.Collections))
	if report.FailureCount > 0 {
		msg += fmt.Sprintf("; %d value(s) could not be assigned", report.FailureCount)
	}
	a.logger.Info(msg)

	return domain.ImportResponse{Status: domain.ImportSuccess, Message: msg}, nil
}

// Snapshot returns the current state of the host document.
func (a *App) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	ctx, span := a.tracer.Start(ctx, "snapshot")
	defer span.End()

	snap, err := a.renderer.Snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	snap.Revision = a.store.Digest()
	return snap, nil
}

// Serve runs the message loop over in and out. With watch set, external edits
// to the document file are reloaded and pushed as snapshots.
func (a *App) Serve(ctx context.Context, in io.Reader, out io.Writer, watch bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	refresh := make(chan struct{}, 1)

	if watch {
		if err := a.watcher.Start(ctx, a.store.Path()); err != nil {
			return err
		}

		debouncer := watcher.NewDebouncer(a.debounce, func() {
			if err := a.reloader.Reload(); err != nil {
				a.logger.Error(err)
				return
			}
			select {
			case refresh <- struct{}{}:
			default:
			}
		})

		g.Go(func() error {
			defer debouncer.Stop()
			for ev := range a.watcher.Events() {
				if ev.Operation == ports.OpRemove {
					continue
				}
				debouncer.Trigger()
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			return a.watcher.Stop()
		})
	}

	g.Go(func() error {
		defer cancel()
		return a.server.Serve(ctx, a, in, out, refresh)
	})

	return g.Wait()
}
