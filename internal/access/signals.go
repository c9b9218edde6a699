package access

import "strings"

// Signals is the flat, typed extraction of an account record. It carries no
// decision: presence of a signal is recorded here, what it means is decided
// by Classify and Resolve.
type Signals struct {
	HasVendorID     bool
	HasVendorFlag   bool
	HasBusinessID   bool
	HasCustomerFlag bool
	HasApproverID   bool
	HasApproverFlag bool

	// KindCandidates are the raw free-text account-kind strings found on the
	// record, in alias-table order.
	KindCandidates []string
}

// ExtractSignals reads every registered alias off the record. Missing, nil or
// wrong-typed fields are skipped, never an error.
func ExtractSignals(r Record) Signals {
	return Signals{
		HasVendorID:     hasIdentifier(r, vendorIDFields),
		HasVendorFlag:   hasFlag(r, vendorFlagFields),
		HasBusinessID:   hasIdentifier(r, businessIDFields),
		HasCustomerFlag: hasFlag(r, customerFlagFields),
		HasApproverID:   hasIdentifier(r, approverIDFields),
		HasApproverFlag: hasFlag(r, approverFlagFields),
		KindCandidates:  kindCandidates(r),
	}
}

// hasIdentifier reports whether any alias holds a usable id: a non-blank
// string or a number. Booleans and objects do not count as identifiers.
func hasIdentifier(r Record, paths []string) bool {
	for _, p := range paths {
		v, ok := r.lookup(p)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				return true
			}
		case float64, int, int64:
			return true
		}
	}
	return false
}

// hasFlag reports whether any alias holds an explicitly truthy value.
func hasFlag(r Record, paths []string) bool {
	for _, p := range paths {
		if v, ok := r.lookup(p); ok && isTruthy(v) {
			return true
		}
	}
	return false
}

// isTruthy accepts only the explicit truthy set: boolean true, numeric 1 and
// the strings "1"/"true". Everything else, including "false", 0 and absent
// values, is false.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	case int64:
		return t == 1
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s == "1" || s == "true"
	}
	return false
}

func kindCandidates(r Record) []string {
	var out []string
	for _, p := range kindFields {
		v, ok := r.lookup(p)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
