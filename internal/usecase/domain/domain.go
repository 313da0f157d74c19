package domain

import (
	"context"
	"time"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/repository"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/pkg/hasher"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	hasher  hasher.Hasher
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	h hasher.Hasher,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		hasher:  h,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// Health reports store reachability.
func (u *Usecase) Health(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Ping(ctx)
}
