package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/taskboard/pkg/domain"
)

// LogHooks returns hooks that write every dispatch to logger.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			logger.InfoContext(ctx, "dispatch",
				"action", e.Action,
				"changed", e.Changed,
				"lists", e.Lists,
			)
		},
		OnReject: func(ctx context.Context, e *domain.DispatchEvent) {
			logger.WarnContext(ctx, "reject",
				"action", e.Action,
				"err", e.Err,
			)
		},
	}
}

// Chain combines hooks so each event reaches every non-nil callback in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var onDispatch, onReject []func(context.Context, *domain.DispatchEvent)
	for _, h := range hooks {
		if h.OnDispatch != nil {
			onDispatch = append(onDispatch, h.OnDispatch)
		}
		if h.OnReject != nil {
			onReject = append(onReject, h.OnReject)
		}
	}

	var out domain.LifecycleHooks
	if len(onDispatch) > 0 {
		out.OnDispatch = func(ctx context.Context, e *domain.DispatchEvent) {
			for _, fn := range onDispatch {
				fn(ctx, e)
			}
		}
	}
	if len(onReject) > 0 {
		out.OnReject = func(ctx context.Context, e *domain.DispatchEvent) {
			for _, fn := range onReject {
				fn(ctx, e)
			}
		}
	}
	return out
}
