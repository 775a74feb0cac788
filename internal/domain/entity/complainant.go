package entity

import "time"

// Complainant is the person who filed a report. No crime or arrest fields;
// instead it carries the report date/time, a local 11-digit phone number and
// descriptive attributes used for follow-up.
type Complainant struct {
	ID              string
	Name            string
	Address         string
	State           string
	LGA             string
	Gender          string
	Complexion      string
	EyeColor        string
	HairColor       string
	Occupation      string
	Phone           string
	ReportDate      *time.Time
	ReportTime      string
	Remarks         string
	OfficerInCharge string
	Photo           *Attachment
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
