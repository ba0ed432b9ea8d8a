package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// SkillList accepts either a JSON array of strings or a single comma-delimited
// string. Entries are trimmed and empty ones dropped, order preserved.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*s = normalizeSkills(arr)
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		*s = normalizeSkills(strings.Split(raw, ","))
		return nil
	}
	return errors.New("skills must be a string or an array of strings")
}

func normalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, sk := range in {
		if sk = strings.TrimSpace(sk); sk != "" {
			out = append(out, sk)
		}
	}
	return out
}

// Date accepts "2006-01-02" or full RFC 3339 timestamps.
type Date struct{ time.Time }

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return errors.New("invalid date, want YYYY-MM-DD")
	}
	d.Time = t
	return nil
}

// ProfileInput is the upsert payload. Pointer fields distinguish "absent" from
// "set to empty": only non-nil fields enter the stored patch.
type ProfileInput struct {
	Company   *string    `json:"company"`
	Website   *string    `json:"website"`
	Location  *string    `json:"location"`
	Status    *string    `json:"status"`
	Bio       *string    `json:"bio"`
	Github    *string    `json:"github"`
	Skills    *SkillList `json:"skills"`
	Youtube   *string    `json:"youtube"`
	Twitter   *string    `json:"twitter"`
	Instagram *string    `json:"instagram"`
	Linkedin  *string    `json:"linkedin"`
	Facebook  *string    `json:"facebook"`
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        *Date  `json:"from" validate:"required"`
	To          *Date  `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationInput struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"field_of_study" validate:"required"`
	From         *Date  `json:"from" validate:"required"`
	To           *Date  `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
