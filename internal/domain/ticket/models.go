package ticket

import (
	"errors"
	"fmt"
)

var ErrUnknownViolationType = errors.New("unknown violation type")

// Metadata carries the per-image attributes attached to the uploaded
// object at upload time. All three keys are required by the uploader.
type Metadata struct {
	Violation string
	Location  string
	Date      string
}

// Ticket is the payload published to the ticket queue by the plate
// reader stage.
type Ticket struct {
	Plate     string `json:"plate"`
	Violation string `json:"violation"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	Amount    int    `json:"amount"`
}

// RegistryRecord is one vehicle/owner entry from the DMV registry.
type RegistryRecord struct {
	Plate             string
	Make              string
	Model             string
	Color             string
	OwnerName         string
	OwnerContact      string
	PreferredLanguage string
}

// Violation is the payload published to the violation queue by the DMV
// stage. Field names are a hard contract with the notifier stage; note
// the rename from the ticket queue's "violation"/"amount".
type Violation struct {
	Plate             string `json:"plate"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	Color             string `json:"color"`
	Name              string `json:"name"`
	Contact           string `json:"contact"`
	PreferredLanguage string `json:"preferredLanguage"`
	ViolationLocation string `json:"violationLocation"`
	ViolationType     string `json:"violationType"`
	TicketAmount      int    `json:"ticketAmount"`
	Date              string `json:"date"`
}

// amounts maps a violation type to its fixed ticket amount. The table
// is the single source of ticket amounts; an amount never arrives from
// the outside.
var amounts = map[string]int{
	"No stop.":               300,
	"No full stop on right.": 75,
	"No right on red.":       125,
}

// AmountFor returns the ticket amount for a violation type.
func AmountFor(violation string) (int, error) {
	amount, ok := amounts[violation]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownViolationType, violation)
	}
	return amount, nil
}

// New builds a Ticket from an extracted plate and the image metadata.
// An unrecognized violation type fails; it never defaults to amount 0.
func New(plate string, meta Metadata) (Ticket, error) {
	amount, err := AmountFor(meta.Violation)
	if err != nil {
		return Ticket{}, err
	}
	return Ticket{
		Plate:     plate,
		Violation: meta.Violation,
		Location:  meta.Location,
		Date:      meta.Date,
		Amount:    amount,
	}, nil
}

// Enrich merges a registry record into a ticket. A nil record means the
// plate is unregistered; vehicle and owner fields stay empty strings so
// the violation still reaches the notifier for manual follow-up.
// Violation fields are always copied verbatim from the ticket.
func Enrich(t Ticket, rec *RegistryRecord) Violation {
	v := Violation{
		Plate:             t.Plate,
		ViolationLocation: t.Location,
		ViolationType:     t.Violation,
		TicketAmount:      t.Amount,
		Date:              t.Date,
	}
	if rec != nil {
		v.Make = rec.Make
		v.Model = rec.Model
		v.Color = rec.Color
		v.Name = rec.OwnerName
		v.Contact = rec.OwnerContact
		v.PreferredLanguage = rec.PreferredLanguage
	}
	return v
}
