package authoring

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"go-club-recruit/internal/api"
	"go-club-recruit/internal/resume"
)

// API is the slice of the backend client the authoring workflow needs.
type API interface {
	FetchFieldDefinitions(ctx context.Context, cycleID int) ([]resume.FieldDefinition, error)
	FetchResume(ctx context.Context, cycleID int) (*resume.Resume, error)
	CreateResume(ctx context.Context, cycleID int) (*resume.Resume, error)
	FetchFieldValues(ctx context.Context, cycleID int) ([]resume.SimpleField, error)
	SaveFieldValues(ctx context.Context, cycleID int, values []resume.FieldValue) error
	UpdateFieldValues(ctx context.Context, cycleID int, values []resume.FieldValue) error
	SubmitResume(ctx context.Context, cycleID int, resumeID int64) error
}

var (
	ErrNotLoaded     = errors.New("简历尚未加载")
	ErrNotEditable   = errors.New("当前状态不可编辑")
	ErrUnknownField  = errors.New("未知字段")
	ErrPhotoTooLarge = errors.New("照片大小不能超过 5MB")
)

// maxPhotoBytes caps the personal photo before it leaves the client.
const maxPhotoBytes = 5 << 20

// Workflow drives one applicant's resume for one cycle: load-or-create,
// stage edits locally, then save or submit. Nothing persists until an
// explicit Save/Submit/Update.
type Workflow struct {
	api     API
	cycleID int

	fields resume.FieldMap
	rsm    *resume.Resume

	// staged holds the working copy of every answer, keyed by field id.
	staged map[int]resume.SimpleField

	departments resume.DepartmentChoice
	interview   resume.InterviewTime
	techStack   []string
}

func New(apiClient API, cycleID int) *Workflow {
	return &Workflow{
		api:     apiClient,
		cycleID: cycleID,
		staged:  make(map[int]resume.SimpleField),
	}
}

// LoadOrCreate fetches the cycle's field definitions and the applicant's
// resume, creating an empty draft when the backend reports none. Composite
// fields are decoded into their editable shapes; malformed ones degrade to
// empty defaults instead of failing the load.
func (w *Workflow) LoadOrCreate(ctx context.Context) error {
	defs, err := w.api.FetchFieldDefinitions(ctx, w.cycleID)
	if err != nil {
		return fmt.Errorf("failed to load field definitions: %w", err)
	}
	w.fields = resume.BuildFieldMap(defs)

	rsm, err := w.api.FetchResume(ctx, w.cycleID)
	if errors.Is(err, api.ErrNotFound) {
		log.Printf("📝 No resume for cycle %d yet, creating a draft", w.cycleID)
		rsm, err = w.api.CreateResume(ctx, w.cycleID)
	}
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	w.rsm = rsm

	values, err := w.api.FetchFieldValues(ctx, w.cycleID)
	if err != nil {
		return fmt.Errorf("failed to load field values: %w", err)
	}
	w.resetStaged(values)
	return nil
}

func (w *Workflow) resetStaged(values []resume.SimpleField) {
	w.staged = make(map[int]resume.SimpleField, len(values))
	for _, v := range values {
		w.staged[v.FieldID] = v
	}
	w.departments = resume.DecodeDepartments(w.keyedValue(resume.KeyDepartments))
	w.interview = resume.DecodeInterviewTime(w.keyedValue(resume.KeyInterviewTime))
	w.techStack = resume.DecodeTechStack(w.keyedValue(resume.KeyTechStack))
}

func (w *Workflow) keyedValue(key string) string {
	id, ok := w.fields.ID(key)
	if !ok {
		return ""
	}
	if v, ok := w.staged[id]; ok {
		return v.FieldValue
	}
	return ""
}

// Resume returns the loaded resume, nil before LoadOrCreate.
func (w *Workflow) Resume() *resume.Resume {
	return w.rsm
}

// CanEdit is the advisory local copy of the editability predicate; the
// server remains the enforcer on every write.
func (w *Workflow) CanEdit() bool {
	return w.rsm != nil && resume.CanEdit(w.rsm.Status)
}

// FieldValue returns the staged value for a semantic field key.
func (w *Workflow) FieldValue(key string) string {
	return w.keyedValue(key)
}

// SetField stages a local edit by semantic key. The backend is not
// contacted.
func (w *Workflow) SetField(key, value string) error {
	if w.rsm == nil {
		return ErrNotLoaded
	}
	if !w.CanEdit() {
		return fmt.Errorf("%w: %s", ErrNotEditable, w.rsm.Status)
	}
	id, ok := w.fields.ID(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	staged := w.staged[id]
	staged.FieldID = id
	staged.FieldKey = key
	staged.FieldValue = value
	w.staged[id] = staged
	return nil
}

// Departments returns the staged department preference.
func (w *Workflow) Departments() resume.DepartmentChoice {
	return w.departments
}

// SetDepartment stages one department slot ("first" or "second"),
// clearing the opposite slot on a duplicate, and re-encodes the composite
// field.
func (w *Workflow) SetDepartment(slot, value string) error {
	switch slot {
	case "first":
		w.departments.SetFirst(value)
	case "second":
		w.departments.SetSecond(value)
	default:
		return fmt.Errorf("unknown department slot %q", slot)
	}
	return w.SetField(resume.KeyDepartments, w.departments.Encode())
}

// InterviewTime returns the staged interview-time preference.
func (w *Workflow) InterviewTime() resume.InterviewTime {
	return w.interview
}

// SetInterviewTime stages one aspect of the interview-time preference:
// slots "first" and "second" behave like departments, "canAttend" set to
// "no" force-clears both slots on encode, "customTime" is free text.
func (w *Workflow) SetInterviewTime(aspect, value string) error {
	switch aspect {
	case "first":
		w.interview.SetFirst(value)
	case "second":
		w.interview.SetSecond(value)
	case "canAttend":
		w.interview.CanAttend = value
	case "customTime":
		w.interview.CustomTime = value
	default:
		return fmt.Errorf("unknown interview time aspect %q", aspect)
	}
	return w.SetField(resume.KeyInterviewTime, w.interview.Encode())
}

// TechStack returns the staged tech-stack rows.
func (w *Workflow) TechStack() []string {
	return w.techStack
}

// SetTechStack stages the whole list; blanks are dropped on encode.
func (w *Workflow) SetTechStack(items []string) error {
	w.techStack = items
	return w.SetField(resume.KeyTechStack, resume.EncodeTechStack(items))
}

// SetPhoto stages the personal photo as base64, rejecting anything over
// 5MB before it is sent.
func (w *Workflow) SetPhoto(data []byte) error {
	if len(data) > maxPhotoBytes {
		return fmt.Errorf("%w: %d bytes", ErrPhotoTooLarge, len(data))
	}
	return w.SetField(resume.KeyPersonalPhoto, base64.StdEncoding.EncodeToString(data))
}

// collectValues gathers every staged non-empty answer for persistence.
// Empty and unset values are never sent.
func (w *Workflow) collectValues() []resume.FieldValue {
	out := make([]resume.FieldValue, 0, len(w.staged))
	for _, v := range w.staged {
		if v.FieldValue == "" {
			continue
		}
		out = append(out, resume.FieldValue{
			FieldID:    v.FieldID,
			FieldValue: v.FieldValue,
			ValueID:    v.ValueID,
			ResumeID:   w.rsm.ResumeID,
		})
	}
	return out
}

// Save persists all staged non-empty values, leaving status as it is.
func (w *Workflow) Save(ctx context.Context) error {
	if w.rsm == nil {
		return ErrNotLoaded
	}
	if !w.CanEdit() {
		return fmt.Errorf("%w: %s", ErrNotEditable, w.rsm.Status)
	}
	if err := w.api.SaveFieldValues(ctx, w.cycleID, w.collectValues()); err != nil {
		return err
	}
	return nil
}

// Submit persists the staged values then flips Draft->Submitted. A
// duplicate submission surfaces as api.ErrAlreadySubmitted and must not be
// retried.
func (w *Workflow) Submit(ctx context.Context) error {
	if err := w.Save(ctx); err != nil {
		return err
	}
	if err := w.api.SubmitResume(ctx, w.cycleID, w.rsm.ResumeID); err != nil {
		return err
	}
	w.rsm.Status = resume.StatusSubmitted
	return nil
}

// Update is the post-submission edit path: bulk-update by valueId, then
// re-affirm Submitted locally in case the backend reset status on the raw
// field write.
func (w *Workflow) Update(ctx context.Context) error {
	if w.rsm == nil {
		return ErrNotLoaded
	}
	if !w.CanEdit() {
		return fmt.Errorf("%w: %s", ErrNotEditable, w.rsm.Status)
	}
	if err := w.api.UpdateFieldValues(ctx, w.cycleID, w.collectValues()); err != nil {
		return err
	}
	w.rsm.Status = resume.StatusSubmitted
	return nil
}

// CancelEdit discards staged edits and reloads the persisted version. A
// failed reload leaves the previous in-memory state untouched.
func (w *Workflow) CancelEdit(ctx context.Context) error {
	if w.rsm == nil {
		return ErrNotLoaded
	}
	rsm, err := w.api.FetchResume(ctx, w.cycleID)
	if err != nil {
		return fmt.Errorf("failed to reload resume, keeping local state: %w", err)
	}
	values, err := w.api.FetchFieldValues(ctx, w.cycleID)
	if err != nil {
		return fmt.Errorf("failed to reload field values, keeping local state: %w", err)
	}
	w.rsm = rsm
	w.resetStaged(values)
	return nil
}
