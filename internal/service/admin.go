package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/repository"
)

// AdminService exposes server diagnostics to admins.
type AdminService interface {
	Diagnostics(ctx context.Context, userID uuid.UUID) (model.Diagnostics, error)
}

type AdminServiceImpl struct {
	users    repository.UserRepository
	progress repository.ProgressRepository
	version  string
	model    string
	started  time.Time
}

// NewAdminService constructs AdminService; version and modelName are reported verbatim.
func NewAdminService(users repository.UserRepository, progress repository.ProgressRepository, version, modelName string) *AdminServiceImpl {
	return &AdminServiceImpl{users: users, progress: progress, version: version, model: modelName, started: time.Now()}
}

// Diagnostics requires the caller to be an admin.
func (s *AdminServiceImpl) Diagnostics(ctx context.Context, userID uuid.UUID) (model.Diagnostics, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.Diagnostics{}, err
	}
	if !u.IsAdmin {
		return model.Diagnostics{}, errs.ErrForbidden
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return model.Diagnostics{}, err
	}
	saved, err := s.progress.Count(ctx)
	if err != nil {
		return model.Diagnostics{}, err
	}
	return model.Diagnostics{
		Users:     users,
		Progress:  saved,
		Version:   s.version,
		Model:     s.model,
		StartedAt: s.started,
	}, nil
}
