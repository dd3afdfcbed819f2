// Package form evaluates the complete booking-request snapshot: which
// conditions still block submission and what to tell the visitor about them.
package form

import (
	"time"

	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/rates"
)

// FileRef describes an attached file. Content stays with the UI layer; the
// engine only ever sees name and size.
type FileRef struct {
	Name string `json:"name" yaml:"name"`
	Size int64  `json:"size" yaml:"size"`
}

// Contact holds the personal fields collected for one occupant.
type Contact struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
}

// Snapshot is the full state of the wizard at one instant. The UI owns the
// mutable copy; the engine only reads snapshots, so every evaluation is a
// pure function of one of these values.
type Snapshot struct {
	Unit     rates.Unit `json:"unit" yaml:"unit"`
	CheckIn  time.Time  `json:"check_in" yaml:"check_in"`
	CheckOut time.Time  `json:"check_out" yaml:"check_out"`

	Contact Contact `json:"contact" yaml:"contact"`

	// PartySize and SecondOccupant belong to the two-occupant variant of
	// the form. When PartySize is 2 the second occupant's name fields are
	// required; a zero PartySize means the variant is inactive.
	PartySize      int      `json:"party_size,omitempty" yaml:"party_size"`
	SecondOccupant *Contact `json:"second_occupant,omitempty" yaml:"second_occupant"`

	Situation applicant.Situation `json:"situation" yaml:"situation"`

	Attachments map[documents.Category][]FileRef `json:"attachments" yaml:"attachments"`
}

// Attached returns the files currently attached under a category.
func (s Snapshot) Attached(c documents.Category) []FileRef {
	return s.Attachments[c]
}
