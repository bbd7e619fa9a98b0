package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds the casbin enforcer with the fixed capability policy.
// Roles are not tenant-scoped here: the administrator role is the only one
// with approval powers, everything else is a plain employee.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{"admin", "viagem", "aprovar"},
		{"admin", "viagem", "reprovar"},
		{"admin", "empregado", "gerenciar"},
		{"admin", "cargo", "gerenciar"},
		{"admin", "referencia", "gerenciar"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
