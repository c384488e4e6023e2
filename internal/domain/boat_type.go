package domain

import "strings"

// BoatType is the berth type of a boat. It selects the billing rate and the
// shape of the location payload.
type BoatType string

const (
	BoatSlip    BoatType = "slip"
	BoatLand    BoatType = "land"
	BoatTrailer BoatType = "trailor" // legacy spelling, kept for file compatibility
	BoatStorage BoatType = "storage"
)

// BoatTypes lists every berth type in declaration order.
var BoatTypes = []BoatType{BoatSlip, BoatLand, BoatTrailer, BoatStorage}

// Valid reports whether t is one of the known berth types.
func (t BoatType) Valid() bool {
	switch t {
	case BoatSlip, BoatLand, BoatTrailer, BoatStorage:
		return true
	}
	return false
}

// String returns the canonical external label, or "unknown".
func (t BoatType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return string(t)
}

// LookupBoatType resolves a label case-insensitively. ok is false when the
// label is not recognized.
func LookupBoatType(s string) (t BoatType, ok bool) {
	candidate := BoatType(strings.ToLower(strings.TrimSpace(s)))
	if candidate.Valid() {
		return candidate, true
	}
	return BoatSlip, false
}

// ParseBoatType resolves a label case-insensitively. Unrecognized labels
// fall back to BoatSlip; use LookupBoatType to detect the fallback.
func ParseBoatType(s string) BoatType {
	t, _ := LookupBoatType(s)
	return t
}
