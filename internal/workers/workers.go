package workers

import (
	"context"

	"github.com/dpanagushin/framestore/internal/config"
	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/objstore"
	"github.com/dpanagushin/framestore/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker enabled by the configuration.
// A zero reconcile interval disables the drift reconciler.
func NewWorkers(ctx context.Context, storages *store.Storages, objectStore objstore.Client, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ReconcileInterval > 0 {
		w.workers = append(w.workers,
			NewReconcileWorker(ctx, storages.FrameRepository, objectStore, cfg.ReconcileInterval, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
