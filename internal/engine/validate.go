package engine

import "math"

// ValidateEntry checks whether an entry is complete enough to be accepted
// into a scope's entry list. It returns nil for a valid entry and a
// sentinel error describing the first problem found otherwise.
//
// Validation is advisory: the engine never drops entries on its own.
// Callers are expected to reject invalid entries before insertion so that
// totals only ever see accepted lines.
func ValidateEntry(e Entry) error {
	if !e.Scope.Valid() {
		return ErrUnknownScope
	}

	if math.IsNaN(e.ActivityData) || math.IsInf(e.ActivityData, 0) ||
		math.IsNaN(e.EmissionFactor) || math.IsInf(e.EmissionFactor, 0) {
		return ErrNonFiniteNumber
	}

	if e.ActivityData < 0 {
		return ErrNegativeActivityData
	}
	if e.ActivityData == 0 {
		return ErrNoActivityData
	}
	if e.EmissionFactor == 0 {
		return ErrMissingFactor
	}

	return nil
}

// FilterValid splits entries into accepted and rejected lists using
// ValidateEntry. Rejected entries are returned alongside their errors so
// the caller can report them; the accepted siblings proceed unaffected.
func FilterValid(entries []Entry) (valid []Entry, rejected []RejectedEntry) {
	for _, e := range entries {
		if err := ValidateEntry(e); err != nil {
			rejected = append(rejected, RejectedEntry{Entry: e, Err: err})
			continue
		}
		valid = append(valid, e)
	}
	return valid, rejected
}

// RejectedEntry pairs an invalid entry with the validation error that
// excluded it.
type RejectedEntry struct {
	Entry Entry
	Err   error
}
