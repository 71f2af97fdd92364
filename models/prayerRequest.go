package models

import "time"

// Prayer request lifecycle states, in the wire values the clients use.
const (
	PrayerStatusPending  = "pendiente"
	PrayerStatusPraying  = "en-oracion"
	PrayerStatusAnswered = "respondida"

	DefaultPrayerCategory = "general"
)

// PrayerRequest is a congregant-submitted request. Prayer_Count only grows,
// one step per intercession, and is not part of any update payload.
type PrayerRequest struct {
	Prayer_Request_ID int       `json:"id" goqu:"skipinsert"`
	Request           string    `json:"peticion"`
	Author            string    `json:"autor"`
	Status            string    `json:"estado"`
	Prayer_Count      int       `json:"contadorOraciones"`
	Is_Private        bool      `json:"privada"`
	Category          string    `json:"categoria"`
	Datetime_Create   time.Time `json:"creadoEn" goqu:"skipinsert,skipupdate"`
	Datetime_Update   time.Time `json:"actualizadoEn" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Request    string  `json:"peticion" binding:"required"`
	Author     string  `json:"autor" binding:"required"`
	Status     *string `json:"estado"`
	Is_Private *bool   `json:"privada"`
	Category   *string `json:"categoria"`
}

type PrayerRequestUpdate struct {
	Request    *string `json:"peticion"`
	Author     *string `json:"autor"`
	Status     *string `json:"estado"`
	Is_Private *bool   `json:"privada"`
	Category   *string `json:"categoria"`
}

type PrayerRequestFilter struct {
	Status   string
	Category string
}

// IsValidPrayerStatus reports whether s is one of the known lifecycle states.
func IsValidPrayerStatus(s string) bool {
	switch s {
	case PrayerStatusPending, PrayerStatusPraying, PrayerStatusAnswered:
		return true
	}
	return false
}

func NewPrayerRequest(body PrayerRequestCreate) PrayerRequest {
	return PrayerRequest{
		Request:      body.Request,
		Author:       body.Author,
		Status:       stringOr(body.Status, PrayerStatusPending),
		Prayer_Count: 0,
		Is_Private:   boolOr(body.Is_Private, false),
		Category:     stringOr(body.Category, DefaultPrayerCategory),
	}
}

func (u PrayerRequestUpdate) Apply(p *PrayerRequest) {
	if u.Request != nil {
		p.Request = *u.Request
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Is_Private != nil {
		p.Is_Private = *u.Is_Private
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
}

func (u PrayerRequestUpdate) Record() map[string]interface{} {
	rec := map[string]interface{}{}
	if u.Request != nil {
		rec["request"] = *u.Request
	}
	if u.Author != nil {
		rec["author"] = *u.Author
	}
	if u.Status != nil {
		rec["status"] = *u.Status
	}
	if u.Is_Private != nil {
		rec["is_private"] = *u.Is_Private
	}
	if u.Category != nil {
		rec["category"] = *u.Category
	}
	return rec
}
