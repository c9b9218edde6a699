package access

// Canonical token allow-lists. Each capability names its own list so policy
// changes touch data, not control flow. These are the single source of truth;
// no caller may re-derive role membership locally.
var (
	// ApproverTokens is the canonical approver list. An HR_ADMIN variant
	// seen in one legacy call site is deliberately not included pending
	// product sign-off; the narrower list is the denying one.
	ApproverTokens = []string{
		"APPROVER",
		"TRAVELAPPROVER",
		"FINANCEAPPROVER",
		"BILLINGAPPROVER",
		"COSTCENTERAPPROVER",
		"MANAGERAPPROVER",
	}

	userAdminTokens    = []string{"HR", "ADMIN", "SUPERADMIN"}
	policyAdminTokens  = []string{"HR", "ADMIN", "SUPERADMIN"}
	holidayAdminTokens = []string{"ADMIN", "SUPERADMIN"}
)

const (
	tokenRequester       = "REQUESTER"
	tokenWorkspaceLeader = "WORKSPACELEADER"
	tokenCustomer        = "CUSTOMER"
)

// CapabilitySet is the full gate output for one account record, computed
// fresh on every evaluation. Absent explicit evidence, every capability is
// false.
type CapabilitySet struct {
	Persona           Persona `json:"persona"`
	IsApprover        bool    `json:"isApprover"`
	IsRequester       bool    `json:"isRequester"`
	IsWorkspaceLeader bool    `json:"isWorkspaceLeader"`
	CanCreateUsers    bool    `json:"canCreateUsers"`
	CanManagePolicies bool    `json:"canManagePolicies"`
	CanManageOrgChart bool    `json:"canManageOrgChart"`
	CanManageHolidays bool    `json:"canManageHolidays"`
	DisplayLabel      string  `json:"displayLabel"`
}

// Resolve computes the capability set for a record. Pure: no I/O, no cached
// state, malformed input degrades to denial.
func Resolve(r Record) CapabilitySet {
	persona := Classify(r)
	tokens := CollectRoleTokens(r)
	sig := ExtractSignals(r)

	cs := CapabilitySet{
		Persona:           persona,
		IsApprover:        isApprover(sig, tokens),
		IsRequester:       tokens.Has(tokenRequester),
		IsWorkspaceLeader: isWorkspaceLeader(persona, sig, tokens),
		CanManagePolicies: tokens.HasAny(policyAdminTokens...),
		CanManageOrgChart: tokens.HasAny(policyAdminTokens...),
		CanManageHolidays: tokens.HasAny(holidayAdminTokens...),
	}
	cs.CanCreateUsers = canCreateUsers(r, persona, sig, tokens)
	cs.DisplayLabel = displayLabel(persona, sig, tokens)
	return cs
}

// IsApprover reports approver status from an approver id, an approver flag
// or membership in the canonical approver token list.
func IsApprover(r Record) bool {
	return isApprover(ExtractSignals(r), CollectRoleTokens(r))
}

// IsRequester reports whether the record carries the requester role token.
func IsRequester(r Record) bool {
	return CollectRoleTokens(r).Has(tokenRequester)
}

// IsWorkspaceLeader reports workspace leadership: the explicit token, or the
// leadership-by-elimination fallback for customer accounts.
func IsWorkspaceLeader(r Record) bool {
	return isWorkspaceLeader(Classify(r), ExtractSignals(r), CollectRoleTokens(r))
}

// CanCreateUsers gates the user-creation surface.
func CanCreateUsers(r Record) bool {
	return canCreateUsers(r, Classify(r), ExtractSignals(r), CollectRoleTokens(r))
}

// CanManagePolicies gates policy administration.
func CanManagePolicies(r Record) bool {
	return CollectRoleTokens(r).HasAny(policyAdminTokens...)
}

// CanManageOrgChart gates org-chart administration.
func CanManageOrgChart(r Record) bool {
	return CollectRoleTokens(r).HasAny(policyAdminTokens...)
}

// CanManageHolidays gates holiday-calendar administration. Stricter than the
// other admin surfaces: HR alone does not qualify.
func CanManageHolidays(r Record) bool {
	return CollectRoleTokens(r).HasAny(holidayAdminTokens...)
}

// DisplayLabel returns the cosmetic persona/role label. It gates nothing.
func DisplayLabel(r Record) string {
	return displayLabel(Classify(r), ExtractSignals(r), CollectRoleTokens(r))
}

func isApprover(sig Signals, tokens TokenSet) bool {
	return sig.HasApproverID || sig.HasApproverFlag || tokens.HasAny(ApproverTokens...)
}

// isWorkspaceLeader carries the leadership-by-elimination policy forward
// unchanged from the legacy console: a customer account with no requester or
// approver evidence and no sub-role tokens beyond a generic CUSTOMER marker
// is treated as the workspace leader. Pending product confirmation.
func isWorkspaceLeader(persona Persona, sig Signals, tokens TokenSet) bool {
	if tokens.Has(tokenWorkspaceLeader) {
		return true
	}
	if persona != PersonaCustomer {
		return false
	}
	if tokens.Has(tokenRequester) || isApprover(sig, tokens) {
		return false
	}
	return tokens.Has(tokenCustomer) || len(tokens) == 0
}

// canCreateUsers applies the user-creation precedence: vendor accounts are
// hard-denied with no exception path, privileged staff tokens allow, customer
// sub-roles cascade approver > leader > requester, and trailing approver
// evidence allows for otherwise-unprivileged accounts.
func canCreateUsers(r Record, persona Persona, sig Signals, tokens TokenSet) bool {
	if r == nil {
		return false
	}
	if persona == PersonaVendor {
		return false
	}
	if persona == PersonaStaff && tokens.HasAny(userAdminTokens...) {
		return true
	}
	if persona == PersonaCustomer {
		switch {
		case isApprover(sig, tokens):
			return true
		case isWorkspaceLeader(persona, sig, tokens):
			return true
		default:
			return false
		}
	}
	return isApprover(sig, tokens)
}

func displayLabel(persona Persona, sig Signals, tokens TokenSet) string {
	switch persona {
	case PersonaVendor:
		return "Vendor Partner"
	case PersonaCustomer:
		switch {
		case isApprover(sig, tokens):
			return "Approver"
		case isWorkspaceLeader(persona, sig, tokens):
			return "Workspace Leader"
		case tokens.Has(tokenRequester):
			return "Requester"
		default:
			return "Member"
		}
	case PersonaUnknown:
		return "Guest"
	default:
		if tokens.HasAny(userAdminTokens...) {
			return "People Strategist"
		}
		return "Specialist"
	}
}
