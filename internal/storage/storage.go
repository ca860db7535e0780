// Package storage defines the Storage interface — the contract any
// database backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care which database they are
// talking to. By depending only on this interface:
//
//   - Switching databases = implement the interface for the new DB,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real database needed for handler tests.
package storage

import (
	"errors"

	"github.com/traini8/training-center-api/internal/types"
)

// ErrCenterCodeExists is returned by CreateTrainingCenter when another
// record already holds the same center_code. The handler maps it to a
// 400 response rather than a generic 500.
var ErrCenterCodeExists = errors.New("a training center with this center_code already exists")

// ListFilter narrows GetTrainingCenters results. Empty fields are
// ignored; non-empty fields are exact matches combined with AND.
type ListFilter struct {
	City    string
	State   string
	Pincode string
}

// Storage is the database contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
type Storage interface {
	// CreateTrainingCenter inserts a new record, stamping CreatedOn with
	// the current Unix time, and returns the record exactly as stored.
	// Returns ErrCenterCodeExists if the center_code is already taken.
	CreateTrainingCenter(center types.TrainingCenter) (types.TrainingCenter, error)

	// GetTrainingCenters returns every record matching the filter.
	// Returns an empty slice (not nil) when nothing matches.
	GetTrainingCenters(filter ListFilter) ([]types.TrainingCenter, error)
}
