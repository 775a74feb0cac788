package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Suspect mirrors Criminal minus the conviction date: a person under
// investigation, not yet convicted.
type Suspect struct {
	ID              string
	Name            string
	CrimeCode       string
	ArrestDate      *time.Time
	Address         string
	State           string
	LGA             string
	Gender          string
	Age             *int
	Complexion      string
	Height          *decimal.Decimal
	Weight          *decimal.Decimal
	Remarks         string
	OfficerInCharge string
	Photo           *Attachment
	Thumbprint      *Attachment
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
