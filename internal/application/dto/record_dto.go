package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

// CriminalResponse criminal record without its binary fields; hasPhoto and
// hasThumbprint tell the client whether the binary endpoints will serve bytes.
type CriminalResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CrimeCode       string           `json:"crimeCode"`
	ArrestDate      *time.Time       `json:"arrestDate,omitempty"`
	ConvictDate     *time.Time       `json:"convictDate,omitempty"`
	Address         string           `json:"address,omitempty"`
	State           string           `json:"state,omitempty"`
	LGA             string           `json:"lga,omitempty"`
	Gender          string           `json:"gender,omitempty"`
	Age             *int             `json:"age,omitempty"`
	Complexion      string           `json:"complexion,omitempty"`
	Height          *decimal.Decimal `json:"height,omitempty"`
	Weight          *decimal.Decimal `json:"weight,omitempty"`
	Remarks         string           `json:"remarks,omitempty"`
	OfficerInCharge string           `json:"officerInCharge"`
	HasPhoto        bool             `json:"hasPhoto"`
	HasThumbprint   bool             `json:"hasThumbprint"`
	CreatedBy       string           `json:"createdBy"`
	UpdatedBy       string           `json:"updatedBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewCriminalResponse maps the entity onto the wire shape.
func NewCriminalResponse(c *entity.Criminal) CriminalResponse {
	return CriminalResponse{
		ID:              c.ID,
		Name:            c.Name,
		CrimeCode:       c.CrimeCode,
		ArrestDate:      c.ArrestDate,
		ConvictDate:     c.ConvictDate,
		Address:         c.Address,
		State:           c.State,
		LGA:             c.LGA,
		Gender:          c.Gender,
		Age:             c.Age,
		Complexion:      c.Complexion,
		Height:          c.Height,
		Weight:          c.Weight,
		Remarks:         c.Remarks,
		OfficerInCharge: c.OfficerInCharge,
		HasPhoto:        c.Photo != nil,
		HasThumbprint:   c.Thumbprint != nil,
		CreatedBy:       c.CreatedBy,
		UpdatedBy:       c.UpdatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// SuspectResponse suspect record without its binary fields.
type SuspectResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CrimeCode       string           `json:"crimeCode"`
	ArrestDate      *time.Time       `json:"arrestDate,omitempty"`
	Address         string           `json:"address,omitempty"`
	State           string           `json:"state,omitempty"`
	LGA             string           `json:"lga,omitempty"`
	Gender          string           `json:"gender,omitempty"`
	Age             *int             `json:"age,omitempty"`
	Complexion      string           `json:"complexion,omitempty"`
	Height          *decimal.Decimal `json:"height,omitempty"`
	Weight          *decimal.Decimal `json:"weight,omitempty"`
	Remarks         string           `json:"remarks,omitempty"`
	OfficerInCharge string           `json:"officerInCharge"`
	HasPhoto        bool             `json:"hasPhoto"`
	HasThumbprint   bool             `json:"hasThumbprint"`
	CreatedBy       string           `json:"createdBy"`
	UpdatedBy       string           `json:"updatedBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewSuspectResponse maps the entity onto the wire shape.
func NewSuspectResponse(s *entity.Suspect) SuspectResponse {
	return SuspectResponse{
		ID:              s.ID,
		Name:            s.Name,
		CrimeCode:       s.CrimeCode,
		ArrestDate:      s.ArrestDate,
		Address:         s.Address,
		State:           s.State,
		LGA:             s.LGA,
		Gender:          s.Gender,
		Age:             s.Age,
		Complexion:      s.Complexion,
		Height:          s.Height,
		Weight:          s.Weight,
		Remarks:         s.Remarks,
		OfficerInCharge: s.OfficerInCharge,
		HasPhoto:        s.Photo != nil,
		HasThumbprint:   s.Thumbprint != nil,
		CreatedBy:       s.CreatedBy,
		UpdatedBy:       s.UpdatedBy,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ComplainantResponse complainant record without its photo bytes.
type ComplainantResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Address         string     `json:"address,omitempty"`
	State           string     `json:"state,omitempty"`
	LGA             string     `json:"lga,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	Complexion      string     `json:"complexion,omitempty"`
	EyeColor        string     `json:"eyeColor,omitempty"`
	HairColor       string     `json:"hairColor,omitempty"`
	Occupation      string     `json:"occupation,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	ReportDate      *time.Time `json:"reportDate"`
	ReportTime      string     `json:"reportTime"`
	Remarks         string     `json:"remarks,omitempty"`
	OfficerInCharge string     `json:"officerInCharge"`
	HasPhoto        bool       `json:"hasPhoto"`
	CreatedBy       string     `json:"createdBy"`
	UpdatedBy       string     `json:"updatedBy"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// NewComplainantResponse maps the entity onto the wire shape.
func NewComplainantResponse(c *entity.Complainant) ComplainantResponse {
	return ComplainantResponse{
		ID:              c.ID,
		Name:            c.Name,
		Address:         c.Address,
		State:           c.State,
		LGA:             c.LGA,
		Gender:          c.Gender,
		Complexion:      c.Complexion,
		EyeColor:        c.EyeColor,
		HairColor:       c.HairColor,
		Occupation:      c.Occupation,
		Phone:           c.Phone,
		ReportDate:      c.ReportDate,
		ReportTime:      c.ReportTime,
		Remarks:         c.Remarks,
		OfficerInCharge: c.OfficerInCharge,
		HasPhoto:        c.Photo != nil,
		CreatedBy:       c.CreatedBy,
		UpdatedBy:       c.UpdatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
