package access

// SignInPath is the destination of the unauthenticated redirect.
const SignInPath = "/sign-in"

// Outcome is a route-guard verdict. There is no fourth value: evaluation is
// total for every valid requirement.
type Outcome string

const (
	Allow    Outcome = "allow"
	Deny     Outcome = "deny"
	Redirect Outcome = "redirect"
)

// Decision is the guard verdict for one (record, requirement) pair.
type Decision struct {
	Outcome Outcome
	// Target is the redirect destination, set only for Redirect.
	Target string
}

// Requirement protects a route. Exactly one shape applies: a role whitelist
// (AnyToken, raw values, normalized on evaluation) or a capability predicate
// composed from this package's resolver functions. A whitelist takes priority
// when both are set; an empty requirement denies.
type Requirement struct {
	AnyToken  []string
	Predicate func(Record) bool
}

// Guard evaluates a requirement against a record. No account always redirects
// to sign-in regardless of the requirement; a signed-in account that fails
// the requirement is denied in place.
func Guard(r Record, req Requirement) Decision {
	if r == nil {
		return Decision{Outcome: Redirect, Target: SignInPath}
	}
	if len(req.AnyToken) > 0 {
		tokens := CollectRoleTokens(r)
		for _, want := range req.AnyToken {
			if tokens.Has(Normalize(want)) {
				return Decision{Outcome: Allow}
			}
		}
		return Decision{Outcome: Deny}
	}
	if req.Predicate != nil && req.Predicate(r) {
		return Decision{Outcome: Allow}
	}
	return Decision{Outcome: Deny}
}
