package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingStage struct {
	mu   sync.Mutex
	seen []uuid.UUID
	err  error
}

func (s *recordingStage) Run(_ context.Context, analysisID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, analysisID)
	return s.err
}

func (s *recordingStage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

func TestStageQueue_ProcessesAllJobs(t *testing.T) {
	stage := &recordingStage{}
	q := NewStageQueue(stage, nil, WithWorkers(3), WithQueueSize(16))

	const n = 10
	for i := 0; i < n; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{AnalysisID: uuid.New(), SubmittedAt: time.Now()}))
	}
	q.Shutdown(context.Background())

	require.Equal(t, n, stage.count())
}

func TestStageQueue_StageErrorDoesNotStopWorkers(t *testing.T) {
	stage := &recordingStage{err: errors.New("parse failed")}
	q := NewStageQueue(stage, nil, WithWorkers(1), WithQueueSize(4))

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{AnalysisID: uuid.New()}))
	}
	q.Shutdown(context.Background())

	require.Equal(t, 3, stage.count())
}

func TestStageQueue_EnqueueAfterShutdownIsDropped(t *testing.T) {
	stage := &recordingStage{}
	q := NewStageQueue(stage, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{AnalysisID: uuid.New()}))
	require.Zero(t, stage.count())
}

func TestStageQueue_DoubleShutdown(t *testing.T) {
	q := NewStageQueue(&recordingStage{}, nil)
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
