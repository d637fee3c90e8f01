package quota

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"reachsync/internal/domain"
)

// fakeUsageStore keeps counters in memory; the row lock is a no-op since
// these tests are single-threaded.
type fakeUsageStore struct {
	counters map[string]*domain.UsageCounter
}

func newFakeUsageStore() *fakeUsageStore {
	return &fakeUsageStore{counters: make(map[string]*domain.UsageCounter)}
}

func (f *fakeUsageStore) Get(_ context.Context, ownerID string) (*domain.UsageCounter, error) {
	if c, ok := f.counters[ownerID]; ok {
		copied := *c
		return &copied, nil
	}
	return &domain.UsageCounter{OwnerID: ownerID}, nil
}

func (f *fakeUsageStore) GetForUpdate(ctx context.Context, ownerID string) (*domain.UsageCounter, error) {
	return f.Get(ctx, ownerID)
}

func (f *fakeUsageStore) Save(_ context.Context, counter *domain.UsageCounter) error {
	copied := *counter
	f.counters[counter.OwnerID] = &copied
	return nil
}

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type LimiterTestSuite struct {
	suite.Suite
	store   *fakeUsageStore
	limiter *Limiter
	now     time.Time
}

func (s *LimiterTestSuite) SetupTest() {
	s.store = newFakeUsageStore()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.limiter = NewLimiter(s.store, passthroughTx{}, logger)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.limiter.now = func() time.Time { return s.now }
}

func TestLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(LimiterTestSuite))
}

func (s *LimiterTestSuite) TestCheckAndIncrement_ConsumesAllowance() {
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		decision, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
		s.NoError(err)
		s.True(decision.Allowed)
		s.Equal(10-i, decision.Remaining)
		s.False(decision.LimitReached)
	}

	decision, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
	s.NoError(err)
	s.False(decision.Allowed)
	s.True(decision.LimitReached)
	s.Equal(0, decision.Remaining)

	// A declined request does not consume anything.
	s.Equal(10, s.store.counters["owner-1"].Count)
}

func (s *LimiterTestSuite) TestCheckAndIncrement_WindowReset() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
		s.NoError(err)
	}

	decision, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
	s.NoError(err)
	s.True(decision.LimitReached)

	// Move past the window; the next check resets before evaluating.
	s.now = s.now.Add(Window)

	decision, err = s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
	s.NoError(err)
	s.True(decision.Allowed)
	s.Equal(9, decision.Remaining)
	s.Equal(1, s.store.counters["owner-1"].Count)
	s.Equal(s.now, s.store.counters["owner-1"].WindowStart)
}

func (s *LimiterTestSuite) TestCheckAndIncrement_FirstUseStartsWindow() {
	ctx := context.Background()

	decision, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 5)
	s.NoError(err)
	s.True(decision.Allowed)
	s.Equal(4, decision.Remaining)
	s.Equal(s.now, s.store.counters["owner-1"].WindowStart)
}

func (s *LimiterTestSuite) TestCheckAndIncrement_OwnersIndependent() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 3)
		s.NoError(err)
	}

	decision, err := s.limiter.CheckAndIncrement(ctx, "owner-2", 3)
	s.NoError(err)
	s.True(decision.Allowed)
	s.Equal(2, decision.Remaining)
}

func (s *LimiterTestSuite) TestPeek_DoesNotConsume() {
	ctx := context.Background()

	_, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
	s.NoError(err)

	for i := 0; i < 5; i++ {
		decision, err := s.limiter.Peek(ctx, "owner-1", 10)
		s.NoError(err)
		s.True(decision.Allowed)
		s.Equal(9, decision.Remaining)
	}

	s.Equal(1, s.store.counters["owner-1"].Count)
}

func (s *LimiterTestSuite) TestPeek_ExpiredWindowShowsFullAllowance() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := s.limiter.CheckAndIncrement(ctx, "owner-1", 10)
		s.NoError(err)
	}

	decision, err := s.limiter.Peek(ctx, "owner-1", 10)
	s.NoError(err)
	s.True(decision.LimitReached)

	s.now = s.now.Add(Window + time.Minute)

	decision, err = s.limiter.Peek(ctx, "owner-1", 10)
	s.NoError(err)
	s.True(decision.Allowed)
	s.Equal(10, decision.Remaining)

	// Peek never persists the reset.
	s.Equal(10, s.store.counters["owner-1"].Count)
}
