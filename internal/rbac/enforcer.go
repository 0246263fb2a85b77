// Package rbac wires a casbin enforcer over the fixed three-role hierarchy
// EMPLOYEE < SUPERVISOR < ADMIN. Policies are static; the model and policy
// set live here rather than in external files so the binary is self-contained.
package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	e *casbin.Enforcer
}

// NewEnforcer builds the enforcer with the static policy set.
func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{"EMPLOYEE", "attendance", "create"},
		{"EMPLOYEE", "attendance", "read"},
		{"EMPLOYEE", "leaves", "create"},
		{"EMPLOYEE", "leaves", "read"},
		{"EMPLOYEE", "leaves", "cancel"},
		{"EMPLOYEE", "notifications", "read"},
		{"SUPERVISOR", "leaves", "review"},
		{"SUPERVISOR", "reports", "read"},
		{"SUPERVISOR", "qrcodes", "read"},
		{"ADMIN", "employees", "read"},
		{"ADMIN", "employees", "manage"},
		{"ADMIN", "qrcodes", "manage"},
		{"ADMIN", "attendance", "sweep"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	// Role inheritance: supervisors do everything employees do, admins
	// everything supervisors do.
	if _, err := e.AddGroupingPolicy("SUPERVISOR", "EMPLOYEE"); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy("ADMIN", "SUPERVISOR"); err != nil {
		return nil, err
	}

	return &Enforcer{e: e}, nil
}

// Allowed reports whether the role may perform act on obj.
func (r *Enforcer) Allowed(role, obj, act string) (bool, error) {
	return r.e.Enforce(role, obj, act)
}
