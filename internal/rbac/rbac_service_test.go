package rbac

import (
	"context"
	"testing"

	"go-viagens/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRepository struct {
	getEmployeeRoleFn func(ctx context.Context, employeeID int64) (int64, bool, error)
}

func (f *fakeRepository) GetEmployeeRole(ctx context.Context, employeeID int64) (int64, bool, error) {
	if f.getEmployeeRoleFn != nil {
		return f.getEmployeeRoleFn(ctx, employeeID)
	}
	return 0, false, nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return NewService(repo, enforcer)
}

func roleRepo(roles map[int64]int64) *fakeRepository {
	return &fakeRepository{
		getEmployeeRoleFn: func(ctx context.Context, employeeID int64) (int64, bool, error) {
			roleID, ok := roles[employeeID]
			return roleID, ok, nil
		},
	}
}

func TestEnforceAdminCapabilities(t *testing.T) {
	svc := newTestService(t, roleRepo(map[int64]int64{1: AdminRoleID}))

	assert.NoError(t, svc.Enforce(context.Background(), 1, "viagem", "aprovar"))
	assert.NoError(t, svc.Enforce(context.Background(), 1, "viagem", "reprovar"))
	assert.NoError(t, svc.Enforce(context.Background(), 1, "empregado", "gerenciar"))
	assert.NoError(t, svc.Enforce(context.Background(), 1, "cargo", "gerenciar"))
	assert.NoError(t, svc.Enforce(context.Background(), 1, "referencia", "gerenciar"))
}

func TestEnforceDeniesRegularEmployee(t *testing.T) {
	svc := newTestService(t, roleRepo(map[int64]int64{2: 2}))

	err := svc.Enforce(context.Background(), 2, "viagem", "aprovar")
	assert.ErrorIs(t, err, ErrNotAllowed)

	err = svc.Enforce(context.Background(), 2, "referencia", "gerenciar")
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestEnforceUnknownActor(t *testing.T) {
	svc := newTestService(t, roleRepo(map[int64]int64{}))

	err := svc.Enforce(context.Background(), 42, "viagem", "aprovar")
	assert.ErrorIs(t, err, ErrActorNotFound)
}

// The subject is resolved from storage per call, so promoting an employee
// takes effect without reissuing tokens.
func TestEnforceReadsRoleFromStorage(t *testing.T) {
	roles := map[int64]int64{5: 2}
	svc := newTestService(t, roleRepo(roles))

	assert.ErrorIs(t, svc.Enforce(context.Background(), 5, "viagem", "aprovar"), ErrNotAllowed)

	roles[5] = AdminRoleID
	assert.NoError(t, svc.Enforce(context.Background(), 5, "viagem", "aprovar"))
}

func TestIsAdmin(t *testing.T) {
	svc := newTestService(t, roleRepo(map[int64]int64{1: AdminRoleID, 2: 2}))

	isAdmin, err := svc.IsAdmin(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.IsAdmin(context.Background(), 99)
	assert.ErrorIs(t, err, ErrActorNotFound)
}
