package access

import "strings"

// Persona is the coarse account category the console renders for.
type Persona string

const (
	PersonaStaff    Persona = "STAFF"
	PersonaVendor   Persona = "VENDOR"
	PersonaCustomer Persona = "CUSTOMER"
	// PersonaUnknown means no account is present. A present-but-ambiguous
	// record never classifies as UNKNOWN; it defaults to STAFF.
	PersonaUnknown Persona = "UNKNOWN"
)

// Kind-keyword families matched against normalized kind candidates.
var (
	vendorKindKeywords   = []string{"VENDOR", "SUPPLIER", "PARTNER"}
	customerKindKeywords = []string{"CUSTOMER", "BUSINESS", "CLIENT", "CORPORATE", "COMPANY", "ORGANIZATION", "ORG"}
)

// Classify assigns exactly one persona to the record. Precedence is a fixed
// tie-break, first match wins:
//
//  1. nil record: UNKNOWN
//  2. any vendor id or flag: VENDOR
//  3. any business/customer id or flag: CUSTOMER
//  4. kind candidates containing a vendor-family keyword: VENDOR,
//     else a customer-family keyword: CUSTOMER
//  5. default: STAFF
//
// Structural evidence (ids, typed flags) outranks free-text kind strings
// because the text fields go stale across the account lifecycle. Vendor
// evidence outranks customer evidence: legacy vendor accounts carry both
// kinds of fields and must never surface as paying customers.
func Classify(r Record) Persona {
	if r == nil {
		return PersonaUnknown
	}
	return classify(ExtractSignals(r))
}

func classify(sig Signals) Persona {
	if sig.HasVendorID || sig.HasVendorFlag {
		return PersonaVendor
	}
	if sig.HasBusinessID || sig.HasCustomerFlag {
		return PersonaCustomer
	}
	for _, raw := range sig.KindCandidates {
		if containsAny(Normalize(raw), vendorKindKeywords) {
			return PersonaVendor
		}
	}
	for _, raw := range sig.KindCandidates {
		if containsAny(Normalize(raw), customerKindKeywords) {
			return PersonaCustomer
		}
	}
	return PersonaStaff
}

func containsAny(token string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(token, kw) {
			return true
		}
	}
	return false
}
