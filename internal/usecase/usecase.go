package usecase

import (
	"context"
	"time"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/repository"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/usecase/domain"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/pkg/hasher"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	TeamUsecaseInterface
	CommentUsecaseInterface
	ProfileUsecaseInterface
	LookupUsecaseInterface
	HealthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, h hasher.Hasher, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, h, timeout)
}
