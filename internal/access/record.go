// Package access classifies console accounts and resolves the capabilities
// that gate navigation entries, page sections and protected routes.
//
// The account record arrives from the external session provider and its shape
// is not under our control: the same fact (vendor identity, approver status,
// account kind) shows up under different field names, casings and nesting
// depths depending on which backend issued the session. Every known alias is
// registered in the tables below; no other package may read role or kind
// fields off a record directly.
package access

import "strings"

// Record is the raw account object handed over by the session provider,
// decoded JSON or JWT claims. It is read-only to this package and may be nil
// when no account is signed in.
type Record map[string]any

// Alias tables map each canonical signal to the ordered list of source-field
// paths it may appear under. A dot descends into a nested container
// (profile/payload or a vendor/business sub-object). Adding a new backend
// alias is a one-line change here.
var (
	vendorIDFields = []string{
		"vendorId", "vendor_id",
		"vendorProfileId", "vendor_profile_id",
		"vendor.id", "vendor.vendorId",
		"profile.vendorId", "profile.vendor_id",
	}

	vendorFlagFields = []string{
		"isVendor", "is_vendor",
		"profile.isVendor",
	}

	businessIDFields = []string{
		"businessId", "business_id",
		"customerId", "customer_id",
		"clientId", "client_id",
		"companyId", "company_id",
		"business.id", "customer.id",
		"profile.businessId", "profile.customerId",
	}

	customerFlagFields = []string{
		"isCustomer", "is_customer",
		"isBusiness", "is_business",
	}

	approverIDFields = []string{
		"approverId", "approver_id",
	}

	approverFlagFields = []string{
		"isApprover", "is_approver",
	}

	// Free-text account-kind candidates, inspected only after the structural
	// id/flag signals above have failed to classify the account.
	kindFields = []string{
		"role", "type", "category", "kind",
		"profileType", "profile_type",
		"entityType", "entity_type",
		"accountType", "account_type",
		"profile.type", "profile.role", "profile.accountType", "profile.account_type",
		"payload.type", "payload.kind", "payload.accountType", "payload.account_type",
	}

	// Role-bearing fields feeding CollectRoleTokens. The first entry is an
	// array, the rest are scalars.
	roleFields = []string{
		"roles",
		"role",
		"hrmsAccessRole", "hrms_access_role",
		"hrmsAccessLevel", "hrms_access_level",
		"userType", "user_type",
		"accountType", "account_type",
		"category",
		"approvalRole", "approval_role",
	}
)

// lookup resolves a dotted field path against the record, descending through
// nested objects. Missing keys or non-object intermediates yield (nil, false).
func (r Record) lookup(path string) (any, bool) {
	if r == nil {
		return nil, false
	}
	var cur any = map[string]any(r)
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
