package navigation

import (
	"github.com/helloviza/frontend-hrms-sub002/internal/access"
)

// gates is the registry stored menu configuration refers to. Every predicate
// is a thin composition over the access package.
var gates = map[string]Gate{
	"authenticated": func(r access.Record) bool { return r != nil },

	"staff":    personaGate(access.PersonaStaff),
	"vendor":   personaGate(access.PersonaVendor),
	"customer": personaGate(access.PersonaCustomer),

	"isApprover":        access.IsApprover,
	"isRequester":       access.IsRequester,
	"isWorkspaceLeader": access.IsWorkspaceLeader,

	"canCreateUsers":    access.CanCreateUsers,
	"canManagePolicies": access.CanManagePolicies,
	"canManageOrgChart": access.CanManageOrgChart,
	"canManageHolidays": access.CanManageHolidays,

	// Any admin surface at all; gates the Administration group as a whole.
	"admin": func(r access.Record) bool {
		cs := access.Resolve(r)
		return cs.CanManagePolicies || cs.CanManageOrgChart || cs.CanManageHolidays
	},
}

// GateByName resolves a configured gate name. Unknown names resolve to a
// deny-all gate so a typo in menu configuration hides an entry instead of
// exposing it.
func GateByName(name string) Gate {
	if g, ok := gates[name]; ok {
		return g
	}
	return denyAll
}

func denyAll(access.Record) bool { return false }

func personaGate(p access.Persona) Gate {
	return func(r access.Record) bool { return access.Classify(r) == p }
}
