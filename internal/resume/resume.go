package resume

import (
	"time"
)

// Resume is one applicant's submission for one recruitment cycle.
type Resume struct {
	ResumeID     int64         `json:"resumeId"`
	CycleID      int           `json:"cycleId,omitempty"`
	UserID       int64         `json:"userId,omitempty"`
	Status       Status        `json:"status"`
	SubmittedAt  *time.Time    `json:"submittedAt,omitempty"`
	SimpleFields []SimpleField `json:"simpleFields,omitempty"`
}

// SimpleField is one answered field as the backend returns it, with the
// persisted valueId used to target updates.
type SimpleField struct {
	FieldID    int    `json:"fieldId"`
	FieldKey   string `json:"fieldKey,omitempty"`
	FieldLabel string `json:"fieldLabel,omitempty"`
	FieldValue string `json:"fieldValue"`
	ValueID    *int64 `json:"valueId,omitempty"`
}

// FieldValue is the write-side shape: what the client sends when saving.
type FieldValue struct {
	FieldID    int    `json:"fieldId"`
	FieldValue string `json:"fieldValue"`
	ValueID    *int64 `json:"valueId"`
	ResumeID   int64  `json:"resumeId"`
}

// Field returns the first simple field matching the given label or key.
// The admin list addresses fields by label ("姓名"), the authoring side by
// key ("name"); both are stable identifiers.
func (r *Resume) Field(labelOrKey string) (SimpleField, bool) {
	for _, f := range r.SimpleFields {
		if f.FieldLabel == labelOrKey || f.FieldKey == labelOrKey {
			return f, true
		}
	}
	return SimpleField{}, false
}

// FieldText is Field with an empty-string fallback for display.
func (r *Resume) FieldText(labelOrKey string) string {
	if f, ok := r.Field(labelOrKey); ok {
		return f.FieldValue
	}
	return ""
}

func (r *Resume) Name() string  { return r.firstText("姓名", "name") }
func (r *Resume) Major() string { return r.firstText("专业", "major") }

func (r *Resume) firstText(labelsOrKeys ...string) string {
	for _, k := range labelsOrKeys {
		if v := r.FieldText(k); v != "" {
			return v
		}
	}
	return ""
}
