package storage

import (
	"github.com/lib/pq"

	"github.com/CongregationConsole/models"
)

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneProgramDay(d models.ProgramDay) models.ProgramDay {
	d.Description = cloneString(d.Description)
	d.Scripture_Ref = cloneString(d.Scripture_Ref)
	d.Scripture_Text = cloneString(d.Scripture_Text)
	d.Reflection = cloneString(d.Reflection)
	d.Activity_Title = cloneString(d.Activity_Title)
	d.Activity_Description = cloneString(d.Activity_Description)
	d.Audio_URL = cloneString(d.Audio_URL)
	d.Video_URL = cloneString(d.Video_URL)
	d.Fasting_Description = cloneString(d.Fasting_Description)
	if d.Readings != nil {
		d.Readings = pq.StringArray(cloneStrings(d.Readings))
	}
	return d
}

func cloneJob(j models.Job) models.Job {
	j.Requirements = cloneStrings(j.Requirements)
	j.Benefits = cloneStrings(j.Benefits)
	return j
}

func cloneUserProfile(p models.UserProfile) models.UserProfile {
	p.Skills = cloneStrings(p.Skills)
	return p
}
