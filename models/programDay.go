package models

import (
	"time"

	"github.com/lib/pq"
)

// ProgramDay is one day's content unit of a Program. Day_Number is a display
// order only; it is neither required to be contiguous nor unique.
type ProgramDay struct {
	Program_Day_ID       int            `json:"id" goqu:"skipinsert"`
	Program_ID           int            `json:"programaId"`
	Day_Number           int            `json:"numero"`
	Title                string         `json:"titulo"`
	Description          *string        `json:"descripcion"`
	Scripture_Ref        *string        `json:"versiculoRef"`
	Scripture_Text       *string        `json:"versiculoTexto"`
	Reflection           *string        `json:"reflexion"`
	Activity_Title       *string        `json:"actividadTitulo"`
	Activity_Description *string        `json:"actividadDescripcion"`
	Audio_URL            *string        `json:"audioUrl"`
	Video_URL            *string        `json:"videoUrl"`
	Fasting_Description  *string        `json:"ayunoDescripcion"`
	Readings             pq.StringArray `json:"lecturas"`
	Datetime_Create      time.Time      `json:"creadoEn" goqu:"skipinsert,skipupdate"`
}

type ProgramDayCreate struct {
	Program_ID           int      `json:"programaId"`
	Day_Number           int      `json:"numero" binding:"required,min=1"`
	Title                string   `json:"titulo" binding:"required"`
	Description          *string  `json:"descripcion"`
	Scripture_Ref        *string  `json:"versiculoRef"`
	Scripture_Text       *string  `json:"versiculoTexto"`
	Reflection           *string  `json:"reflexion"`
	Activity_Title       *string  `json:"actividadTitulo"`
	Activity_Description *string  `json:"actividadDescripcion"`
	Audio_URL            *string  `json:"audioUrl"`
	Video_URL            *string  `json:"videoUrl"`
	Fasting_Description  *string  `json:"ayunoDescripcion"`
	Readings             []string `json:"lecturas"`
}

// ProgramDayUpdate cannot move a day to another program.
type ProgramDayUpdate struct {
	Day_Number           *int      `json:"numero" binding:"omitempty,min=1"`
	Title                *string   `json:"titulo"`
	Description          *string   `json:"descripcion"`
	Scripture_Ref        *string   `json:"versiculoRef"`
	Scripture_Text       *string   `json:"versiculoTexto"`
	Reflection           *string   `json:"reflexion"`
	Activity_Title       *string   `json:"actividadTitulo"`
	Activity_Description *string   `json:"actividadDescripcion"`
	Audio_URL            *string   `json:"audioUrl"`
	Video_URL            *string   `json:"videoUrl"`
	Fasting_Description  *string   `json:"ayunoDescripcion"`
	Readings             *[]string `json:"lecturas"`
}

func NewProgramDay(body ProgramDayCreate) ProgramDay {
	day := ProgramDay{
		Program_ID:           body.Program_ID,
		Day_Number:           body.Day_Number,
		Title:                body.Title,
		Description:          body.Description,
		Scripture_Ref:        body.Scripture_Ref,
		Scripture_Text:       body.Scripture_Text,
		Reflection:           body.Reflection,
		Activity_Title:       body.Activity_Title,
		Activity_Description: body.Activity_Description,
		Audio_URL:            body.Audio_URL,
		Video_URL:            body.Video_URL,
		Fasting_Description:  body.Fasting_Description,
	}
	if body.Readings != nil {
		day.Readings = pq.StringArray(append([]string(nil), body.Readings...))
	}
	return day
}

func (u ProgramDayUpdate) Apply(d *ProgramDay) {
	if u.Day_Number != nil {
		d.Day_Number = *u.Day_Number
	}
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Description != nil {
		d.Description = u.Description
	}
	if u.Scripture_Ref != nil {
		d.Scripture_Ref = u.Scripture_Ref
	}
	if u.Scripture_Text != nil {
		d.Scripture_Text = u.Scripture_Text
	}
	if u.Reflection != nil {
		d.Reflection = u.Reflection
	}
	if u.Activity_Title != nil {
		d.Activity_Title = u.Activity_Title
	}
	if u.Activity_Description != nil {
		d.Activity_Description = u.Activity_Description
	}
	if u.Audio_URL != nil {
		d.Audio_URL = u.Audio_URL
	}
	if u.Video_URL != nil {
		d.Video_URL = u.Video_URL
	}
	if u.Fasting_Description != nil {
		d.Fasting_Description = u.Fasting_Description
	}
	if u.Readings != nil {
		d.Readings = pq.StringArray(append([]string(nil), (*u.Readings)...))
	}
}

func (u ProgramDayUpdate) Record() map[string]interface{} {
	rec := map[string]interface{}{}
	if u.Day_Number != nil {
		rec["day_number"] = *u.Day_Number
	}
	if u.Title != nil {
		rec["title"] = *u.Title
	}
	if u.Description != nil {
		rec["description"] = *u.Description
	}
	if u.Scripture_Ref != nil {
		rec["scripture_ref"] = *u.Scripture_Ref
	}
	if u.Scripture_Text != nil {
		rec["scripture_text"] = *u.Scripture_Text
	}
	if u.Reflection != nil {
		rec["reflection"] = *u.Reflection
	}
	if u.Activity_Title != nil {
		rec["activity_title"] = *u.Activity_Title
	}
	if u.Activity_Description != nil {
		rec["activity_description"] = *u.Activity_Description
	}
	if u.Audio_URL != nil {
		rec["audio_url"] = *u.Audio_URL
	}
	if u.Video_URL != nil {
		rec["video_url"] = *u.Video_URL
	}
	if u.Fasting_Description != nil {
		rec["fasting_description"] = *u.Fasting_Description
	}
	if u.Readings != nil {
		rec["readings"] = pq.StringArray(*u.Readings)
	}
	return rec
}
