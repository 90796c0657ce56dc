package workable

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CandidateList struct {
	Candidates []Candidate `json:"candidates"`
}

type JobList struct {
	Jobs []Job `json:"jobs"`
}

type Candidate struct {
	ID              FlexString        `json:"id"`
	Name            string            `json:"name"`
	Email           *string           `json:"email"`
	Phone           *string           `json:"phone"`
	Skills          SkillList         `json:"skills"`
	ExperienceYears *float64          `json:"experience_years"`
	Location        *Location         `json:"location"`
	Applications    []json.RawMessage `json:"applications"`
	ResumeURL       *string           `json:"resume_url"`
	SocialProfiles  []SocialProfile   `json:"social_profiles"`
	Website         *string           `json:"website"`
	Availability    *string           `json:"availability"`
	Summary         *string           `json:"summary"`
}

type SocialProfile struct {
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Job struct {
	ID             FlexString `json:"id"`
	Shortcode      string     `json:"shortcode"`
	Title          string     `json:"title"`
	Department     *string    `json:"department"`
	Location       *Location  `json:"location"`
	Description    *string    `json:"description"`
	Requirements   StringList `json:"requirements"`
	Skills         SkillList  `json:"skills"`
	Salary         *Salary    `json:"salary"`
	EmploymentType *string    `json:"employment_type"`
	Remote         *bool      `json:"remote"`
	State          string     `json:"state"`
	Experience     *string    `json:"experience"`
}

type Salary struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

// Location accepts either a plain string or Workable's location object.
type Location struct {
	LocationStr string `json:"location_str"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Telecommute bool   `json:"telecommuting"`
}

func (l *Location) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Location{LocationStr: s}
		return nil
	}
	type plain Location
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*l = Location(p)
	return nil
}

// String is the display form: location_str, else "city, country".
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.LocationStr != "" {
		return l.LocationStr
	}
	switch {
	case l.City != "" && l.Country != "":
		return l.City + ", " + l.Country
	case l.City != "":
		return l.City
	default:
		return l.Country
	}
}

// FlexString accepts JSON strings and numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("workable id: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// SkillList accepts ["Go"] and [{"name":"Go"}] element forms.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(SkillList, 0, len(raw))
	for _, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || bytes.Equal(r, []byte("null")) {
			continue
		}
		if r[0] == '"' {
			var name string
			if err := json.Unmarshal(r, &name); err != nil {
				return err
			}
			out = append(out, name)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(r, &obj); err != nil {
			return err
		}
		if obj.Name != "" {
			out = append(out, obj.Name)
		}
	}
	*s = out
	return nil
}

// StringList accepts an array of strings or a single string.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		if one == "" {
			*s = StringList{}
			return nil
		}
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
