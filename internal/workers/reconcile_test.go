package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/mock"
)

func newTestReconcileWorker(t *testing.T) (*reconcileWorker, *mock.MockFrameRepository, *mock.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	frames := mock.NewMockFrameRepository(ctrl)
	objects := mock.NewMockClient(ctrl)

	worker, ok := NewReconcileWorker(context.Background(), frames, objects, time.Minute, logger.Nop()).(*reconcileWorker)
	require.True(t, ok)

	return worker, frames, objects
}

// The reconciler only reads from both stores: the mocks would fail the test
// if any write method were called while drift is present on both sides.
func TestReconcileWorker_ObservesWithoutMutating(t *testing.T) {
	worker, frames, objects := newTestReconcileWorker(t)

	day := time.Now().UTC().Format("20060102")
	objects.EXPECT().
		ListObjects(gomock.Any(), day).
		Return([]string{"a1b2c3.jpg", "orphan.jpg"}, nil)
	frames.EXPECT().
		ListFileNamesByDay(gomock.Any(), day).
		Return([]string{"a1b2c3", "missing-blob"}, nil)

	worker.reconcile(context.Background())
}

func TestReconcileWorker_ListObjectsFailureSkipsMetadataQuery(t *testing.T) {
	worker, _, objects := newTestReconcileWorker(t)

	objects.EXPECT().
		ListObjects(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	// no ListFileNamesByDay expectation: the pass must stop early
	worker.reconcile(context.Background())
}

func TestReconcileWorker_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	frames := mock.NewMockFrameRepository(ctrl)
	objects := mock.NewMockClient(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewReconcileWorker(ctx, frames, objects, time.Hour, logger.Nop())

	worker.Run()
	cancel()

	// the loop exits without ever ticking; nothing to assert beyond no panic
	time.Sleep(10 * time.Millisecond)
}
