package sessionservice

import (
	"context"
	"sync"
	"time"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	scorecarddb "github.com/Black-And-White-Club/golphy/app/modules/scorecard/infrastructure/repositories"
	"github.com/Black-And-White-Club/golphy/app/observability"
)

// ------------------------
// Fake Repository
// ------------------------

// FakeRepository delegates to a real in-memory repository unless a *Func hook is set.
type FakeRepository struct {
	trace []string
	inner *scorecarddb.MemoryRepository

	SetStrokeFunc func(id scorecarddomain.PlayerID, hole, strokes int) bool
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		trace: []string{},
		inner: scorecarddb.NewMemoryRepository(),
	}
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeRepository) RegisterPlayer(name string) (scorecarddomain.Player, bool) {
	f.record("RegisterPlayer")
	return f.inner.RegisterPlayer(name)
}

func (f *FakeRepository) RemovePlayer(id scorecarddomain.PlayerID) bool {
	f.record("RemovePlayer")
	return f.inner.RemovePlayer(id)
}

func (f *FakeRepository) SetStroke(id scorecarddomain.PlayerID, hole, strokes int) bool {
	f.record("SetStroke")
	if f.SetStrokeFunc != nil {
		return f.SetStrokeFunc(id, hole, strokes)
	}
	return f.inner.SetStroke(id, hole, strokes)
}

func (f *FakeRepository) GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool) {
	return f.inner.GetStroke(id, hole)
}

func (f *FakeRepository) Player(id scorecarddomain.PlayerID) (scorecarddomain.Player, bool) {
	return f.inner.Player(id)
}

func (f *FakeRepository) Players() []scorecarddomain.Player {
	return f.inner.Players()
}

func (f *FakeRepository) PlayerCount() int {
	return f.inner.PlayerCount()
}

func (f *FakeRepository) Strokes() []scorecarddomain.StrokeRecord {
	return f.inner.Strokes()
}

// --- Accessors for assertions ---

func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ scorecarddb.Repository = (*FakeRepository)(nil)

// ------------------------
// Fake Metrics
// ------------------------

// FakeMetrics records outcomes per operation for assertions.
type FakeMetrics struct {
	mu         sync.Mutex
	Attempts   map[string]int
	Successes  map[string]int
	Rejections map[string][]string
	Failures   map[string]int
	Players    int
	Strokes    int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{
		Attempts:   map[string]int{},
		Successes:  map[string]int{},
		Rejections: map[string][]string{},
		Failures:   map[string]int{},
	}
}

func (m *FakeMetrics) RecordOperationAttempt(_ context.Context, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts[op]++
}

func (m *FakeMetrics) RecordOperationSuccess(_ context.Context, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes[op]++
}

func (m *FakeMetrics) RecordOperationRejected(_ context.Context, op, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejections[op] = append(m.Rejections[op], reason)
}

func (m *FakeMetrics) RecordOperationFailure(_ context.Context, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[op]++
}

func (m *FakeMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

func (m *FakeMetrics) RecordRosterSize(_ context.Context, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Players = n
}

func (m *FakeMetrics) RecordStrokeCount(_ context.Context, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Strokes = n
}

// LastRejection returns the most recent rejection reason for op, or "".
func (m *FakeMetrics) LastRejection(op string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.Rejections[op]
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

var _ observability.SessionMetrics = (*FakeMetrics)(nil)
