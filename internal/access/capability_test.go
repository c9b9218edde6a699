package access

import "testing"

// The literal console scenarios the legacy call sites disagreed on. These are
// the canonical expectations.
func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name           string
		record         Record
		persona        Persona
		canCreateUsers bool
		label          string
	}{
		{
			name:           "staff HR access role",
			record:         Record{"hrmsAccessRole": "HR"},
			persona:        PersonaStaff,
			canCreateUsers: true,
			label:          "People Strategist",
		},
		{
			name:           "vendor with HR role token",
			record:         Record{"vendorId": "v1", "roles": []any{"HR"}},
			persona:        PersonaVendor,
			canCreateUsers: false,
			label:          "Vendor Partner",
		},
		{
			name:           "customer requester",
			record:         Record{"businessId": "b1", "roles": []any{"Requester"}},
			persona:        PersonaCustomer,
			canCreateUsers: false,
			label:          "Requester",
		},
		{
			name:           "customer with no sub-role tokens",
			record:         Record{"businessId": "b1"},
			persona:        PersonaCustomer,
			canCreateUsers: true,
			label:          "Workspace Leader",
		},
		{
			name:           "present but empty record",
			record:         Record{},
			persona:        PersonaStaff,
			canCreateUsers: false,
			label:          "Specialist",
		},
		{
			name:           "staff approver by id",
			record:         Record{"approverId": "a1"},
			persona:        PersonaStaff,
			canCreateUsers: true,
			label:          "Specialist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := Resolve(tt.record)

			if cs.Persona != tt.persona {
				t.Errorf("persona = %s, want %s", cs.Persona, tt.persona)
			}
			if cs.CanCreateUsers != tt.canCreateUsers {
				t.Errorf("canCreateUsers = %v, want %v", cs.CanCreateUsers, tt.canCreateUsers)
			}
			if cs.DisplayLabel != tt.label {
				t.Errorf("displayLabel = %q, want %q", cs.DisplayLabel, tt.label)
			}
		})
	}
}

func TestResolveNilRecord(t *testing.T) {
	cs := Resolve(nil)

	if cs.Persona != PersonaUnknown {
		t.Errorf("persona = %s, want UNKNOWN", cs.Persona)
	}
	if cs.IsApprover || cs.IsRequester || cs.IsWorkspaceLeader ||
		cs.CanCreateUsers || cs.CanManagePolicies || cs.CanManageOrgChart || cs.CanManageHolidays {
		t.Errorf("nil record must resolve every capability false: %+v", cs)
	}
}

func TestDenyByDefault(t *testing.T) {
	// Staff persona, empty token set: every privileged capability is false.
	cs := Resolve(Record{"name": "plain account"})

	if cs.Persona != PersonaStaff {
		t.Fatalf("persona = %s, want STAFF", cs.Persona)
	}
	if cs.IsApprover || cs.IsRequester || cs.IsWorkspaceLeader ||
		cs.CanCreateUsers || cs.CanManagePolicies || cs.CanManageOrgChart || cs.CanManageHolidays {
		t.Errorf("empty token set must deny everything: %+v", cs)
	}
}

func TestVendorHardDeny(t *testing.T) {
	// No role token combination opens user creation for a vendor.
	tests := []Record{
		{"vendorId": "v1", "roles": []any{"HR"}},
		{"vendorId": "v1", "roles": []any{"ADMIN", "SUPERADMIN"}},
		{"isVendor": true, "hrmsAccessRole": "SuperAdmin"},
		{"vendorId": "v1", "approverId": "a1"},
		{"vendorId": "v1", "roles": []any{"workspace-leader"}},
	}

	for _, record := range tests {
		if CanCreateUsers(record) {
			t.Errorf("vendor record %v must never create users", record)
		}
	}
}

func TestIsApprover(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected bool
	}{
		{"approver id", Record{"approverId": "a1"}, true},
		{"approver snake id", Record{"approver_id": "a1"}, true},
		{"approver flag", Record{"isApprover": true}, true},
		{"plain approver token", Record{"roles": []any{"Approver"}}, true},
		{"travel approver", Record{"roles": []any{"travel-approver"}}, true},
		{"finance approver", Record{"approvalRole": "Finance Approver"}, true},
		{"billing approver", Record{"roles": []any{"BILLING_APPROVER"}}, true},
		{"cost center approver", Record{"roles": []any{"Cost Center Approver"}}, true},
		{"manager approver", Record{"roles": []any{"managerApprover"}}, true},
		{"hr admin variant not canonical", Record{"roles": []any{"HR_ADMIN"}}, false},
		{"requester only", Record{"roles": []any{"Requester"}}, false},
		{"no evidence", Record{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsApprover(tt.record); got != tt.expected {
				t.Errorf("IsApprover(%v) = %v, want %v", tt.record, got, tt.expected)
			}
		})
	}
}

func TestIsWorkspaceLeader(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected bool
	}{
		{"explicit token", Record{"roles": []any{"Workspace Leader"}}, true},
		{"separator-stripped variant", Record{"roles": []any{"workspace_leader"}}, true},
		{"customer by elimination", Record{"businessId": "b1"}, true},
		{"customer with generic token", Record{"businessId": "b1", "accountType": "customer"}, true},
		{"customer requester excluded", Record{"businessId": "b1", "roles": []any{"Requester"}}, false},
		{"customer approver excluded", Record{"businessId": "b1", "approverId": "a1"}, false},
		{"staff not eliminated into leadership", Record{}, false},
		{"vendor never by elimination", Record{"vendorId": "v1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWorkspaceLeader(tt.record); got != tt.expected {
				t.Errorf("IsWorkspaceLeader(%v) = %v, want %v", tt.record, got, tt.expected)
			}
		})
	}
}

func TestCustomerApproverCanCreateUsers(t *testing.T) {
	record := Record{"businessId": "b1", "roles": []any{"Approver"}}

	cs := Resolve(record)
	if !cs.IsApprover {
		t.Error("expected IsApprover")
	}
	if !cs.CanCreateUsers {
		t.Error("customer approver must be able to create users")
	}
	if cs.IsWorkspaceLeader {
		t.Error("approver evidence suppresses the leadership fallback")
	}
}

func TestAdminCapabilityAllowLists(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		policies bool
		orgChart bool
		holidays bool
	}{
		{"HR", Record{"roles": []any{"HR"}}, true, true, false},
		{"ADMIN", Record{"roles": []any{"Admin"}}, true, true, true},
		{"SUPERADMIN", Record{"roles": []any{"super_admin"}}, true, true, true},
		{"requester", Record{"roles": []any{"Requester"}}, false, false, false},
		{"empty", Record{}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManagePolicies(tt.record); got != tt.policies {
				t.Errorf("CanManagePolicies = %v, want %v", got, tt.policies)
			}
			if got := CanManageOrgChart(tt.record); got != tt.orgChart {
				t.Errorf("CanManageOrgChart = %v, want %v", got, tt.orgChart)
			}
			if got := CanManageHolidays(tt.record); got != tt.holidays {
				t.Errorf("CanManageHolidays = %v, want %v", got, tt.holidays)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	record := Record{
		"businessId": "b1",
		"roles":      []any{"Requester", "billing-approver"},
		"profile":    map[string]any{"type": "corporate"},
	}

	first := Resolve(record)
	for i := 0; i < 10; i++ {
		if got := Resolve(record); got != first {
			t.Fatalf("Resolve not deterministic:\nfirst  %+v\nsecond %+v", first, got)
		}
	}
}
