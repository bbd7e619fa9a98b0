package rbac

import (
	"context"
	"net/http"

	"go-viagens/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// AdminRoleID is the reserved administrator role. It is resolved to the
// "admin" casbin subject here, at the access-control boundary, instead of
// being compared against raw integers inside handlers.
const AdminRoleID int64 = 1

var (
	ErrActorNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"only administrators can perform this action",
		http.StatusForbidden,
	)
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	// Enforce re-reads the employee's role from storage (tokens may carry a
	// stale role) and checks the capability against the casbin policy.
	Enforce(ctx context.Context, employeeID int64, resource, action string) error
	IsAdmin(ctx context.Context, employeeID int64) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

func (s *service) subject(ctx context.Context, employeeID int64) (string, error) {
	roleID, found, err := s.repo.GetEmployeeRole(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrActorNotFound
	}
	if roleID == AdminRoleID {
		return "admin", nil
	}
	return "empregado", nil
}

func (s *service) Enforce(ctx context.Context, employeeID int64, resource, action string) error {
	sub, err := s.subject(ctx, employeeID)
	if err != nil {
		return err
	}

	allowed, err := s.enforcer.Enforce(sub, resource, action)
	if err != nil {
		return err
	}
	if !allowed {
		s.logger.Warn("capability denied",
			zap.Int64("employee_id", employeeID),
			zap.String("subject", sub),
			zap.String("resource", resource),
			zap.String("action", action),
		)
		return ErrNotAllowed
	}
	return nil
}

func (s *service) IsAdmin(ctx context.Context, employeeID int64) (bool, error) {
	sub, err := s.subject(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return sub == "admin", nil
}
