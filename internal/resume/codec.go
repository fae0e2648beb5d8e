package resume

import (
	"encoding/json"
	"log"
	"strings"
)

// NoneOption is the "no choice" sentinel the form offers in second-choice
// slots. It is a UI value only and never reaches the backend.
const NoneOption = "无"

// DepartmentChoice holds the two-slot department preference.
type DepartmentChoice struct {
	First  string
	Second string
}

// SetFirst assigns the first choice, clearing the second when it would
// duplicate it. The two slots must never hold the same department.
func (d *DepartmentChoice) SetFirst(v string) {
	d.First = v
	if d.Second != "" && d.Second == v {
		d.Second = ""
	}
}

// SetSecond assigns the second choice, clearing the first on a duplicate.
func (d *DepartmentChoice) SetSecond(v string) {
	d.Second = v
	if d.First != "" && d.First == v {
		d.First = ""
	}
}

// Encode renders the preference as the backend's JSON array, dropping
// empty slots and the 无 sentinel.
func (d DepartmentChoice) Encode() string {
	arr := []string{}
	if d.First != "" && d.First != NoneOption {
		arr = append(arr, d.First)
	}
	if d.Second != "" && d.Second != NoneOption {
		arr = append(arr, d.Second)
	}
	data, _ := json.Marshal(arr)
	return string(data)
}

func (d DepartmentChoice) Empty() bool {
	return d.Encode() == "[]"
}

// DecodeDepartments parses a persisted department array. Malformed input
// degrades to the empty choice rather than failing the whole resume.
func DecodeDepartments(raw string) DepartmentChoice {
	if raw == "" {
		return DepartmentChoice{}
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		log.Printf("⚠️ Failed to parse department preference %q: %v", raw, err)
		return DepartmentChoice{}
	}
	var d DepartmentChoice
	if len(arr) > 0 {
		d.First = arr[0]
	}
	if len(arr) > 1 {
		d.Second = arr[1]
	}
	return d
}

// InterviewTime is the interview-time preference, including whether the
// applicant can attend in person at all.
type InterviewTime struct {
	First      string `json:"first"`
	Second     string `json:"second"`
	CanAttend  string `json:"canAttend"`
	CustomTime string `json:"customTime"`
}

func (t *InterviewTime) SetFirst(v string) {
	t.First = v
	if t.Second != "" && t.Second == v {
		t.Second = ""
	}
}

func (t *InterviewTime) SetSecond(v string) {
	t.Second = v
	if t.First != "" && t.First == v {
		t.First = ""
	}
}

// Encode renders the preference as the backend's JSON object. An applicant
// who cannot attend in person carries no time slots, and the 无 sentinel
// encodes as empty.
func (t InterviewTime) Encode() string {
	out := InterviewTime{
		CanAttend:  t.CanAttend,
		CustomTime: t.CustomTime,
	}
	if out.CanAttend == "" {
		out.CanAttend = "yes"
	}
	if out.CanAttend == "yes" {
		if t.First != NoneOption {
			out.First = t.First
		}
		if t.Second != NoneOption {
			out.Second = t.Second
		}
	}
	data, _ := json.Marshal(out)
	return string(data)
}

// DecodeInterviewTime parses a persisted interview-time object, defaulting
// canAttend to "yes". Malformed input degrades to the empty preference.
func DecodeInterviewTime(raw string) InterviewTime {
	t := InterviewTime{CanAttend: "yes"}
	if raw == "" {
		return t
	}
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		log.Printf("⚠️ Failed to parse interview time %q: %v", raw, err)
		return InterviewTime{CanAttend: "yes"}
	}
	if t.CanAttend == "" {
		t.CanAttend = "yes"
	}
	return t
}

// EncodeTechStack renders the tech-stack list as a JSON array with blank
// entries dropped.
func EncodeTechStack(items []string) string {
	filtered := []string{}
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			filtered = append(filtered, it)
		}
	}
	data, _ := json.Marshal(filtered)
	return string(data)
}

// DecodeTechStack parses a persisted tech-stack array. Malformed input
// degrades to an empty list.
func DecodeTechStack(raw string) []string {
	if raw == "" {
		return nil
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		log.Printf("⚠️ Failed to parse tech stack %q: %v", raw, err)
		return nil
	}
	return arr
}
