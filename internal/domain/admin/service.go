package admin

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jobease/jobease-admin/internal/domain"
	"github.com/jobease/jobease-admin/internal/repository"
	"github.com/jobease/jobease-admin/pkg/logging"
)

// CreatedBy marks admins promoted from the command line
const CreatedBy = "firebase-cli"

// Service promotes users to administrators
type Service struct {
	repo   repository.AdminRepository
	logger *logging.Logger
}

// NewService creates a Service with direct dependencies (Wire-compatible)
func NewService(repo repository.AdminRepository, logger *logging.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin.Service: repository is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{repo: repo, logger: logger}, nil
}

// Promote writes admins/{uid}, replacing any previous entry
func (s *Service) Promote(ctx context.Context, uid, email, role string) (domain.Admin, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" || strings.Contains(uid, "/") {
		return domain.Admin{}, fmt.Errorf("promote admin: bad uid %q: %w", uid, repository.ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return domain.Admin{}, fmt.Errorf("promote admin: bad email %q: %w", email, repository.ErrInvalidInput)
	}
	if role == "" {
		return domain.Admin{}, fmt.Errorf("promote admin: empty role: %w", repository.ErrInvalidInput)
	}

	admin := domain.Admin{UID: uid, Email: email, Role: role, CreatedBy: CreatedBy}

	s.logger.Info("creating admin user", "uid", uid, "email", email, "role", role)
	if err := s.repo.Put(ctx, admin); err != nil {
		return domain.Admin{}, fmt.Errorf("promote admin: %w", err)
	}

	s.logger.Info("admin user created", "uid", uid)
	return admin, nil
}
