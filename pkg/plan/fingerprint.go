package plan

import (
	"github.com/google/uuid"
)

// fingerprintNamespace is the fixed UUIDv5 namespace for plan fingerprints.
// Derived once from the DNS namespace so every build agrees on it.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("planforge"))

// Fingerprint computes the deterministic identity of a plan: a UUIDv5 over
// the plan's canonical JSON with the fingerprint field itself cleared.
// Identical inputs always fingerprint identically.
func Fingerprint(p *FloorPlan) (string, error) {
	stripped := *p
	stripped.Meta.PlanID = ""

	data, err := MarshalPlan(&stripped)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(fingerprintNamespace, data).String(), nil
}
