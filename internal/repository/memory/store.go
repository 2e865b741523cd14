// Package memory is a process-local storage backend with the same contract as
// the PostgreSQL repositories. It backs STORAGE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

type txKey struct{}

type employeeRow struct {
	employee.Employee
	seq uint64
}

type attendanceRow struct {
	attendance.Attendance
	seq uint64
}

type leaveRow struct {
	leave.LeaveRequest
	seq uint64
}

type tables struct {
	employees   map[string]employeeRow
	attendances map[string]attendanceRow
	leaves      map[string]leaveRow
}

func (t tables) clone() tables {
	c := tables{
		employees:   make(map[string]employeeRow, len(t.employees)),
		attendances: make(map[string]attendanceRow, len(t.attendances)),
		leaves:      make(map[string]leaveRow, len(t.leaves)),
	}
	for k, v := range t.employees {
		c.employees[k] = v
	}
	for k, v := range t.attendances {
		c.attendances[k] = v
	}
	for k, v := range t.leaves {
		c.leaves[k] = v
	}
	return c
}

// Store holds all tables. Writers are serialized: a transaction owns the write
// lock for its whole duration and its changes are discarded when fn fails.
// Readers never block on a running transaction and may observe its writes.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    tables
	seq     uint64
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides the clock used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		data: tables{
			employees:   make(map[string]employeeRow),
			attendances: make(map[string]attendanceRow),
			leaves:      make(map[string]leaveRow),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(bool)
	return ok
}

// lockWrite takes the locks needed to mutate data from ctx and returns the release func.
func (s *Store) lockWrite(ctx context.Context) func() {
	if inTx(ctx) {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.writeMu.Lock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.writeMu.Unlock()
	}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// WithinTransaction implements database.Transactor.
func (s *Store) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

var _ database.Transactor = (*Store)(nil)
