// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, storage, and utils can all import types without depending
// on each other.
package types

// Address is the nested postal address block of a training center.
// All four parts are mandatory; the registry refuses records with
// incomplete address details.
type Address struct {
	DetailedAddress string `json:"detailed_address" validate:"required"`
	City            string `json:"city"             validate:"required"`
	State           string `json:"state"            validate:"required"`
	Pincode         string `json:"pincode"          validate:"required"`
}

// TrainingCenter represents one registered training facility.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  controls how the field appears when encoded to JSON
//     (snake_case names match the documented API payload).
//
//  2. validate:"..." rules are checked by the go-playground/validator
//     package on every create request:
//
//     center_name      required, at most 40 characters
//     center_code      required, exactly 12 alphanumeric characters;
//                      also unique across the registry (enforced by storage)
//     address          required, all four parts present
//     student_capacity optional, non-negative
//     contact_email    optional, must parse as an email when given
//     contact_phone    required, exactly 10 digits
//
// ID is the database primary key; it is internal bookkeeping and never
// appears in API responses. CreatedOn is assigned by the storage layer
// at insert time (Unix epoch seconds).
type TrainingCenter struct {
	ID              int64    `json:"-"`
	CenterName      string   `json:"center_name"      validate:"required,max=40"`
	CenterCode      string   `json:"center_code"      validate:"required,len=12,alphanum"`
	Address         Address  `json:"address"          validate:"required"`
	StudentCapacity int      `json:"student_capacity" validate:"omitempty,min=0"`
	CoursesOffered  []string `json:"courses_offered"`
	CreatedOn       int64    `json:"created_on"`
	ContactEmail    string   `json:"contact_email"    validate:"omitempty,email"`
	ContactPhone    string   `json:"contact_phone"    validate:"required,len=10,number"`
}
