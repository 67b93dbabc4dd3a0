package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by every submission store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	store    Pinger
	notifier interface{ IsConfigured() bool }
}

func NewHealthUsecase(store Pinger, notifier interface{ IsConfigured() bool }) HealthUsecase {
	return &healthUsecase{store: store, notifier: notifier}
}

// Check reports store reachability and whether notification email is enabled.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{"status": "ok", "database": "ok", "email": "configured"}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := u.store.Ping(ctx); err != nil {
		out["status"] = "degraded"
		out["database"] = "unreachable"
	}
	if !u.notifier.IsConfigured() {
		out["email"] = "unconfigured"
	}
	return out
}
