package taskboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/taskboard/internal/runtime"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
)

// Store owns the current Board and applies actions to it.
// It is the only place where the board value is replaced.
type Store struct {
	runtime *runtime.Engine
	state   atomic.Pointer[domain.Board]

	// dispatchMu serialises transitions and the notifications that follow them,
	// so observers see boards in dispatch order.
	dispatchMu sync.Mutex

	obsMu     sync.Mutex
	observers map[int]ports.Observer
	order     []int
	nextObs   int

	loader ports.BoardLoader
	seed   *domain.Board
	ids    ports.IDGenerator
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Ensure Store implements Dispatcher
var _ ports.Dispatcher = (*Store)(nil)

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithBoard sets the initial board.
func WithBoard(b *domain.Board) Option {
	return func(s *Store) {
		s.seed = b
	}
}

// WithLoader injects the source of the initial board. It takes precedence over WithBoard.
func WithLoader(l ports.BoardLoader) Option {
	return func(s *Store) {
		s.loader = l
	}
}

// WithIDGenerator overrides the identifier source for new lists and tasks.
func WithIDGenerator(ids ports.IDGenerator) Option {
	return func(s *Store) {
		s.ids = ids
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Store) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New initializes a Store.
// Without WithLoader or WithBoard the store starts with an empty board.
// The initial board is validated (unique IDs, no dangling drag item).
func New(ctx context.Context, opts ...Option) (*Store, error) {
	s := &Store{
		observers: make(map[int]ports.Observer),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	initial := s.seed
	if s.loader != nil {
		loaded, err := s.loader.LoadBoard(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load board: %w", err)
		}
		initial = loaded
	}
	if initial == nil {
		initial = domain.NewBoard()
	}
	if err := domain.Validate(initial); err != nil {
		return nil, fmt.Errorf("invalid initial board: %w", err)
	}

	s.runtime = runtime.NewEngine(
		runtime.WithIDGenerator(s.ids),
		runtime.WithLogger(s.logger),
	)
	s.state.Store(initial)

	s.logger.Debug("Store initialized", "lists", len(initial.Lists))
	return s, nil
}

// GetState returns the current board snapshot. It never blocks.
func (s *Store) GetState() *domain.Board {
	return s.state.Load()
}

// Dispatch applies one action to the current board.
// When the action produces a new board, observers are notified synchronously,
// in subscription order, before Dispatch returns. Observers must not call
// Dispatch themselves.
func (s *Store) Dispatch(ctx context.Context, action domain.Action) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	kind := domain.ActionType("<nil>")
	if action != nil {
		kind = action.Kind()
	}

	prev := s.state.Load()
	next, err := s.runtime.Apply(prev, action)
	if err != nil {
		s.logger.Warn("Action rejected", "action", kind, "err", err)
		if s.hooks.OnReject != nil {
			s.hooks.OnReject(ctx, &domain.DispatchEvent{
				Timestamp: time.Now(),
				Type:      domain.EventReject,
				Action:    kind,
				Lists:     len(prev.Lists),
				Err:       err,
			})
		}
		return err
	}

	changed := next != prev
	if changed {
		s.state.Store(next)
	}
	s.logger.Debug("Action applied", "action", kind, "changed", changed, "lists", len(next.Lists))

	if s.hooks.OnDispatch != nil {
		s.hooks.OnDispatch(ctx, &domain.DispatchEvent{
			Timestamp: time.Now(),
			Type:      domain.EventDispatch,
			Action:    kind,
			Changed:   changed,
			Lists:     len(next.Lists),
		})
	}

	if changed {
		for _, fn := range s.snapshotObservers() {
			fn(prev, next)
		}
	}
	return nil
}

// Subscribe registers an observer for board changes.
// The returned function removes it; calling it more than once is harmless.
func (s *Store) Subscribe(fn ports.Observer) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		if _, ok := s.observers[id]; !ok {
			return
		}
		delete(s.observers, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) snapshotObservers() []ports.Observer {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	out := make([]ports.Observer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.observers[id])
	}
	return out
}
