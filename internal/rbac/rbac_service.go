package rbac

import (
	"sync"

	"kgb-anri/internal/domain"

	"github.com/casbin/casbin/v2"
)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// staticPolicies mendefinisikan hak akses per role. Himpunan role
// tertutup (admin, pegawai) sehingga policy cukup di-load sekali,
// tidak perlu tabel policy di database.
var staticPolicies = [][]string{
	{domain.RoleAdmin, domain.ResourceProposal, domain.ActionRead},
	{domain.RoleAdmin, domain.ResourceProposal, domain.ActionCreate},
	{domain.RoleAdmin, domain.ResourceProposal, domain.ActionVerify},
	{domain.RoleAdmin, domain.ResourceEmployee, domain.ActionRead},
	{domain.RoleAdmin, domain.ResourceEmployee, domain.ActionCreate},
	{domain.RoleAdmin, domain.ResourceHistory, domain.ActionRead},
	{domain.RoleAdmin, domain.ResourceHistory, domain.ActionCreate},

	// Pegawai tidak punya grant apapun: data master dan daftar riwayat
	// hanya untuk admin, sedangkan data miliknya sendiri dilayani lewat
	// endpoint /me yang cukup dijaga autentikasi (NIP dari token).
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.loadStaticPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadStaticPolicy() error {
	s.enforcer.ClearPolicy()

	for _, p := range staticPolicies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
