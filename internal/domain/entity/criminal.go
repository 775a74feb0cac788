package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Criminal is a convicted-person record. Photo and thumbprint are embedded
// binary fields; CreatedBy/UpdatedBy record the acting officer's username.
type Criminal struct {
	ID              string
	Name            string
	CrimeCode       string
	ArrestDate      *time.Time
	ConvictDate     *time.Time
	Address         string
	State           string
	LGA             string
	Gender          string
	Age             *int
	Complexion      string
	Height          *decimal.Decimal // metres, NUMERIC in store
	Weight          *decimal.Decimal // kilograms
	Remarks         string
	OfficerInCharge string
	Photo           *Attachment
	Thumbprint      *Attachment
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
