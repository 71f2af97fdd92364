package models

import "time"

// Program defaults applied on create when the payload omits them.
const (
	DefaultProgramIcon     = "📖"
	DefaultProgramColor    = "#3478F6"
	DefaultProgramCategory = "formacion-cristiana"
	DefaultProgramVersion  = "1.0.0"
	DefaultProgramLevel    = "Básico"
)

// Program is a multi-day devotional course. Total_Days is derived from the
// number of ProgramDay rows that reference it and is never set by clients.
type Program struct {
	Program_ID      int       `json:"id" goqu:"skipinsert"`
	Slug            string    `json:"slug"`
	Name            string    `json:"nombre"`
	Description     *string   `json:"descripcion"`
	Icon            string    `json:"icono"`
	Image_URL       *string   `json:"imagenUrl"`
	Color           string    `json:"color"`
	Category        string    `json:"categoria"`
	Version         string    `json:"version"`
	Total_Days      int       `json:"totalDias"`
	Duration        *string   `json:"duracion"`
	Level           string    `json:"nivel"`
	Published       bool      `json:"publicado"`
	Datetime_Create time.Time `json:"creadoEn" goqu:"skipinsert,skipupdate"`
	Datetime_Update time.Time `json:"actualizadoEn" goqu:"skipinsert"`
}

type ProgramCreate struct {
	Slug        string  `json:"slug" binding:"required"`
	Name        string  `json:"nombre" binding:"required"`
	Description *string `json:"descripcion"`
	Icon        *string `json:"icono"`
	Image_URL   *string `json:"imagenUrl"`
	Color       *string `json:"color"`
	Category    *string `json:"categoria"`
	Version     *string `json:"version"`
	Duration    *string `json:"duracion"`
	Level       *string `json:"nivel"`
	Published   *bool   `json:"publicado"`
}

// ProgramUpdate carries only the fields a caller may change. Total_Days is
// intentionally absent: it is maintained by the day operations.
type ProgramUpdate struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"nombre"`
	Description *string `json:"descripcion"`
	Icon        *string `json:"icono"`
	Image_URL   *string `json:"imagenUrl"`
	Color       *string `json:"color"`
	Category    *string `json:"categoria"`
	Version     *string `json:"version"`
	Duration    *string `json:"duracion"`
	Level       *string `json:"nivel"`
	Published   *bool   `json:"publicado"`
}

type ProgramFilter struct {
	Published *bool
	Category  string
}

// ProgramWithDays is the eager listing shape used by the mobile app.
type ProgramWithDays struct {
	Program
	Days []ProgramDay `json:"dias"`
}

// NewProgram materializes a create payload with every default filled in.
func NewProgram(body ProgramCreate) Program {
	return Program{
		Slug:        body.Slug,
		Name:        body.Name,
		Description: body.Description,
		Icon:        stringOr(body.Icon, DefaultProgramIcon),
		Image_URL:   body.Image_URL,
		Color:       stringOr(body.Color, DefaultProgramColor),
		Category:    stringOr(body.Category, DefaultProgramCategory),
		Version:     stringOr(body.Version, DefaultProgramVersion),
		Total_Days:  0,
		Duration:    body.Duration,
		Level:       stringOr(body.Level, DefaultProgramLevel),
		Published:   boolOr(body.Published, false),
	}
}

// Apply merges the non-nil fields of the update onto p.
func (u ProgramUpdate) Apply(p *Program) {
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.Icon != nil {
		p.Icon = *u.Icon
	}
	if u.Image_URL != nil {
		p.Image_URL = u.Image_URL
	}
	if u.Color != nil {
		p.Color = *u.Color
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Version != nil {
		p.Version = *u.Version
	}
	if u.Duration != nil {
		p.Duration = u.Duration
	}
	if u.Level != nil {
		p.Level = *u.Level
	}
	if u.Published != nil {
		p.Published = *u.Published
	}
}

// Record returns the column/value pairs touched by the update.
func (u ProgramUpdate) Record() map[string]interface{} {
	rec := map[string]interface{}{}
	if u.Slug != nil {
		rec["slug"] = *u.Slug
	}
	if u.Name != nil {
		rec["name"] = *u.Name
	}
	if u.Description != nil {
		rec["description"] = *u.Description
	}
	if u.Icon != nil {
		rec["icon"] = *u.Icon
	}
	if u.Image_URL != nil {
		rec["image_url"] = *u.Image_URL
	}
	if u.Color != nil {
		rec["color"] = *u.Color
	}
	if u.Category != nil {
		rec["category"] = *u.Category
	}
	if u.Version != nil {
		rec["version"] = *u.Version
	}
	if u.Duration != nil {
		rec["duration"] = *u.Duration
	}
	if u.Level != nil {
		rec["level"] = *u.Level
	}
	if u.Published != nil {
		rec["published"] = *u.Published
	}
	return rec
}
