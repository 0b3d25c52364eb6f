package usecase

import (
	"context"
	"time"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/repository"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/usecase/domain"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/validate"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	PersonUsecaseInterface
	TeamUsecaseInterface
	MembershipUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, rules validate.Rules) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, rules)
}
