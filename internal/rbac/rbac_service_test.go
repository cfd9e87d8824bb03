package rbac_test

import (
	"testing"

	"kgb-anri/internal/domain"
	"kgb-anri/internal/rbac"
	"kgb-anri/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) rbac.Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	t.Run("admin can verify proposals", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     domain.RoleAdmin,
			Resource: domain.ResourceProposal,
			Action:   domain.ActionVerify,
		})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("pegawai cannot verify proposals", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     domain.RolePegawai,
			Resource: domain.ResourceProposal,
			Action:   domain.ActionVerify,
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("pegawai cannot list all history", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     domain.RolePegawai,
			Resource: domain.ResourceHistory,
			Action:   domain.ActionRead,
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("pegawai cannot list employee master", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     domain.RolePegawai,
			Resource: domain.ResourceEmployee,
			Action:   domain.ActionRead,
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("admin can read employee master", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     domain.RoleAdmin,
			Resource: domain.ResourceEmployee,
			Action:   domain.ActionRead,
		})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("unknown role denied", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     "superuser",
			Resource: domain.ResourceProposal,
			Action:   domain.ActionRead,
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
