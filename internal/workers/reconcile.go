package workers

import (
	"context"
	"strings"
	"time"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/objstore"
	"github.com/dpanagushin/framestore/internal/store"
)

// reconcileWorker periodically compares today's bucket against the inbox
// rows of the same day and logs every discrepancy: a blob with no metadata
// row (orphan from an aborted upload or a failed deletion) and a row with no
// blob. It only observes; neither store is mutated.
type reconcileWorker struct {
	frameRepository store.FrameRepository
	objectStore     objstore.Client
	interval        time.Duration
	ctx             context.Context
	logger          *logger.Logger
}

// NewReconcileWorker constructs the drift reconciler. The worker stops when
// ctx is cancelled.
func NewReconcileWorker(ctx context.Context, frameRepository store.FrameRepository, objectStore objstore.Client, interval time.Duration, logger *logger.Logger) Worker {
	return &reconcileWorker{
		frameRepository: frameRepository,
		objectStore:     objectStore,
		interval:        interval,
		ctx:             ctx,
		logger:          logger,
	}
}

// Run starts the reconcile loop in its own goroutine and returns.
func (w *reconcileWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting reconcile worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				w.logger.Info().Msg("reconcile worker stopped")
				return
			case <-ticker.C:
				w.reconcile(w.ctx)
			}
		}
	}()
}

// reconcile runs one comparison pass over today's bucket.
func (w *reconcileWorker) reconcile(ctx context.Context) {
	day := time.Now().UTC().Format("20060102")

	objects, err := w.objectStore.ListObjects(ctx, day)
	if err != nil {
		w.logger.Err(err).Str("bucket", day).Msg("reconcile: listing objects failed")
		return
	}

	fileNames, err := w.frameRepository.ListFileNamesByDay(ctx, day)
	if err != nil {
		w.logger.Err(err).Str("day", day).Msg("reconcile: listing metadata failed")
		return
	}

	recorded := make(map[string]struct{}, len(fileNames))
	for _, name := range fileNames {
		recorded[name] = struct{}{}
	}
	stored := make(map[string]struct{}, len(objects))
	for _, object := range objects {
		stored[object] = struct{}{}

		name := strings.TrimSuffix(object, ".jpg")
		if _, ok := recorded[name]; !ok {
			w.logger.Warn().
				Str("bucket", day).
				Str("object", object).
				Msg("reconcile: blob has no metadata row")
		}
	}

	for _, name := range fileNames {
		if _, ok := stored[name+".jpg"]; !ok {
			w.logger.Warn().
				Str("day", day).
				Str("file_name", name).
				Msg("reconcile: metadata row has no blob")
		}
	}

	w.logger.Debug().
		Str("day", day).
		Int("objects", len(objects)).
		Int("rows", len(fileNames)).
		Msg("reconcile pass finished")
}
