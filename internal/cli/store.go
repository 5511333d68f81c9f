package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/internal/config"
	"github.com/aretw0/taskboard/pkg/adapters/file"
	"github.com/aretw0/taskboard/pkg/adapters/memory"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/observability"
	"github.com/aretw0/taskboard/pkg/ports"
)

// NewLoader selects the board source described by cfg:
// the seed document when set, an empty board when requested, the sample board otherwise.
func NewLoader(cfg *config.Config) ports.BoardLoader {
	switch {
	case cfg.Seed != "":
		return file.NewLoader(cfg.Seed)
	case cfg.Empty:
		return memory.NewLoader(domain.NewBoard())
	default:
		return memory.NewLoader(memory.DefaultBoard())
	}
}

// LoadBoard reads and validates the initial board without starting a store.
func LoadBoard(ctx context.Context, cfg *config.Config) (*domain.Board, error) {
	b, err := NewLoader(cfg).LoadBoard(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

// BuildStore creates the store shared by every command.
// In debug mode every dispatch is also logged.
func BuildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*taskboard.Store, error) {
	opts := []taskboard.Option{
		taskboard.WithLoader(NewLoader(cfg)),
		taskboard.WithLogger(logger),
	}
	if cfg.Debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}
	if len(hooks) > 0 {
		opts = append(opts, taskboard.WithLifecycleHooks(observability.Chain(hooks...)))
	}

	store, err := taskboard.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing taskboard: %w", err)
	}
	return store, nil
}
