package services

import (
	"errors"

	"enertek-backend-go/internal/store"
)

// DeleteKind discriminates the three outcomes a delete can have. The legacy
// API overloaded a result string for this; the enum keeps the outcomes
// distinguishable without string matching.
type DeleteKind int

const (
	DeleteOK DeleteKind = iota
	DeleteConflict
	DeleteFailed
)

type DeleteOutcome struct {
	Kind   DeleteKind
	Reason string
}

func deleteOK() DeleteOutcome {
	return DeleteOutcome{Kind: DeleteOK}
}

func deleteConflict(reason string) DeleteOutcome {
	return DeleteOutcome{Kind: DeleteConflict, Reason: reason}
}

func deleteFailed(reason string) DeleteOutcome {
	return DeleteOutcome{Kind: DeleteFailed, Reason: reason}
}

func errIsDuplicate(err error) bool {
	return errors.Is(err, store.ErrDuplicate)
}

// outcomeFromDelete translates repository errors: a foreign-key rejection
// becomes a conflict with the caller-facing reason, anything else a generic
// failure.
func outcomeFromDelete(err error, conflictReason string) DeleteOutcome {
	if err == nil {
		return deleteOK()
	}
	if errors.Is(err, store.ErrReferenced) {
		return deleteConflict(conflictReason)
	}
	return deleteFailed("delete failed")
}
