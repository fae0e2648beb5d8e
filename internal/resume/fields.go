package resume

import "log"

// FieldDefinition describes one answerable field as the backend defines it
// per recruitment cycle.
type FieldDefinition struct {
	FieldID    int    `json:"fieldId"`
	FieldKey   string `json:"fieldKey"`
	FieldLabel string `json:"fieldLabel"`
}

// FieldMap resolves semantic field keys to the cycle's field ids.
type FieldMap map[string]int

// Well-known field keys used by the authoring workflow.
const (
	KeyStudentID         = "student_id"
	KeyName              = "name"
	KeyMajor             = "major"
	KeyEmail             = "email"
	KeyPhone             = "phone"
	KeyGrade             = "grade"
	KeyGender            = "gender"
	KeyDepartments       = "expected_departments"
	KeySelfIntroduction  = "self_introduction"
	KeyTechStack         = "tech_stack"
	KeyProjectExperience = "project_experience"
	KeyInterviewTime     = "expected_interview_time"
	KeyPersonalPhoto     = "personal_photo"
	KeyReason            = "reason"
	KeyGithub            = "github"
)

// fallbackFieldMap matches the field ids the backend has shipped for every
// cycle so far. Using it means the cycle's definitions were missing and id
// drift would corrupt writes, hence the warning in BuildFieldMap.
var fallbackFieldMap = FieldMap{
	KeyStudentID:         16,
	KeyName:              4,
	KeyMajor:             5,
	KeyEmail:             6,
	KeyPhone:             7,
	KeyGrade:             8,
	KeyGender:            9,
	KeyDepartments:       10,
	KeySelfIntroduction:  11,
	KeyTechStack:         12,
	KeyProjectExperience: 13,
	KeyInterviewTime:     14,
	KeyPersonalPhoto:     15,
	KeyReason:            18,
	KeyGithub:            19,
}

// BuildFieldMap turns the cycle's field definitions into a key->id lookup.
// With no definitions it falls back to the hardcoded map.
func BuildFieldMap(defs []FieldDefinition) FieldMap {
	if len(defs) == 0 {
		log.Printf("⚠️ No field definitions returned, using fallback field mapping")
		m := make(FieldMap, len(fallbackFieldMap))
		for k, v := range fallbackFieldMap {
			m[k] = v
		}
		return m
	}
	m := make(FieldMap, len(defs))
	for _, d := range defs {
		m[d.FieldKey] = d.FieldID
	}
	return m
}

// ID resolves a field key, reporting whether the cycle defines it.
func (m FieldMap) ID(key string) (int, bool) {
	id, ok := m[key]
	return id, ok
}
