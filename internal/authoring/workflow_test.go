package authoring

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"go-club-recruit/internal/api"
	"go-club-recruit/internal/resume"

	"github.com/stretchr/testify/assert"
)

// fakeAPI scripts the backend for workflow tests.
type fakeAPI struct {
	defs     []resume.FieldDefinition
	rsm      *resume.Resume
	values   []resume.SimpleField
	fetchErr error

	created   bool
	saved     [][]resume.FieldValue
	updated   [][]resume.FieldValue
	submitted int
	submitErr error
	valuesErr error
}

func (f *fakeAPI) FetchFieldDefinitions(ctx context.Context, cycleID int) ([]resume.FieldDefinition, error) {
	return f.defs, nil
}

func (f *fakeAPI) FetchResume(ctx context.Context, cycleID int) (*resume.Resume, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.rsm, nil
}

func (f *fakeAPI) CreateResume(ctx context.Context, cycleID int) (*resume.Resume, error) {
	f.created = true
	f.rsm = &resume.Resume{ResumeID: 1, CycleID: cycleID, Status: resume.StatusDraft}
	f.fetchErr = nil
	return f.rsm, nil
}

func (f *fakeAPI) FetchFieldValues(ctx context.Context, cycleID int) ([]resume.SimpleField, error) {
	if f.valuesErr != nil {
		return nil, f.valuesErr
	}
	return f.values, nil
}

func (f *fakeAPI) SaveFieldValues(ctx context.Context, cycleID int, values []resume.FieldValue) error {
	f.saved = append(f.saved, values)
	return nil
}

func (f *fakeAPI) UpdateFieldValues(ctx context.Context, cycleID int, values []resume.FieldValue) error {
	f.updated = append(f.updated, values)
	return nil
}

func (f *fakeAPI) SubmitResume(ctx context.Context, cycleID int, resumeID int64) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted++
	return nil
}

func notFound() error {
	return &api.Error{Status: http.StatusNotFound, Message: "简历不存在"}
}

func TestLoadOrCreateCreatesDraftOn404(t *testing.T) {
	fake := &fakeAPI{fetchErr: notFound()}
	wf := New(fake, 2)

	err := wf.LoadOrCreate(context.Background())

	assert.NoError(t, err)
	assert.True(t, fake.created)
	assert.Equal(t, resume.StatusDraft, wf.Resume().Status)
	assert.True(t, wf.CanEdit())
}

func TestLoadOrCreateDecodesComposites(t *testing.T) {
	fake := &fakeAPI{
		rsm: &resume.Resume{ResumeID: 1, Status: resume.StatusDraft},
		values: []resume.SimpleField{
			{FieldID: 10, FieldKey: resume.KeyDepartments, FieldValue: `["技术部"]`},
			{FieldID: 12, FieldKey: resume.KeyTechStack, FieldValue: `["Go","React"]`},
			{FieldID: 14, FieldKey: resume.KeyInterviewTime, FieldValue: "{broken"},
		},
	}
	wf := New(fake, 2)

	assert.NoError(t, wf.LoadOrCreate(context.Background()))
	assert.Equal(t, "技术部", wf.Departments().First)
	assert.Equal(t, []string{"Go", "React"}, wf.TechStack())
	//malformed composite degrades to the empty default
	assert.Equal(t, "yes", wf.InterviewTime().CanAttend)
}

func TestSetFieldGuards(t *testing.T) {
	wf := New(&fakeAPI{}, 2)
	assert.ErrorIs(t, wf.SetField(resume.KeyName, "张三"), ErrNotLoaded)

	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 1, Status: resume.StatusUnderReview}}
	wf = New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))
	assert.ErrorIs(t, wf.SetField(resume.KeyName, "张三"), ErrNotEditable)

	fake.rsm.Status = resume.StatusDraft
	assert.ErrorIs(t, wf.SetField("no_such_field", "x"), ErrUnknownField)
	assert.NoError(t, wf.SetField(resume.KeyName, "张三"))
	assert.Equal(t, "张三", wf.FieldValue(resume.KeyName))
}

func TestSaveSkipsEmptyValues(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusDraft}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))

	assert.NoError(t, wf.SetField(resume.KeyName, "张三"))
	assert.NoError(t, wf.SetField(resume.KeyMajor, ""))

	assert.NoError(t, wf.Save(context.Background()))
	assert.Len(t, fake.saved, 1)
	assert.Len(t, fake.saved[0], 1)
	assert.Equal(t, "张三", fake.saved[0][0].FieldValue)
	assert.Equal(t, int64(7), fake.saved[0][0].ResumeID)
}

func TestSubmitSavesThenFlipsStatus(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusDraft}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))
	assert.NoError(t, wf.SetField(resume.KeyName, "张三"))

	assert.NoError(t, wf.Submit(context.Background()))
	assert.Len(t, fake.saved, 1)
	assert.Equal(t, 1, fake.submitted)
	assert.Equal(t, resume.StatusSubmitted, wf.Resume().Status)
}

func TestSubmitDuplicateSurfacesDomainError(t *testing.T) {
	fake := &fakeAPI{
		rsm:       &resume.Resume{ResumeID: 7, Status: resume.StatusDraft},
		submitErr: &api.Error{Status: http.StatusOK, Code: 3002, Message: "您已经提交过简历，无法重复提交"},
	}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))

	err := wf.Submit(context.Background())
	assert.True(t, errors.Is(err, api.ErrAlreadySubmitted))
	assert.Equal(t, resume.StatusDraft, wf.Resume().Status, "status must not flip on failure")
}

func TestUpdateKeepsSubmitted(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusSubmitted}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))
	assert.NoError(t, wf.SetField(resume.KeyName, "李四"))

	assert.NoError(t, wf.Update(context.Background()))
	assert.Len(t, fake.updated, 1)
	assert.Equal(t, resume.StatusSubmitted, wf.Resume().Status)
}

func TestCancelEditFailureKeepsLocalState(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusDraft}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))
	assert.NoError(t, wf.SetField(resume.KeyName, "张三"))

	fake.valuesErr = errors.New("network down")
	err := wf.CancelEdit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "张三", wf.FieldValue(resume.KeyName), "failed reload must not drop staged edits")

	fake.valuesErr = nil
	fake.values = []resume.SimpleField{{FieldID: 4, FieldKey: resume.KeyName, FieldValue: "原名"}}
	assert.NoError(t, wf.CancelEdit(context.Background()))
	assert.Equal(t, "原名", wf.FieldValue(resume.KeyName))
}

func TestSetDepartmentClearsDuplicate(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusDraft}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))

	assert.NoError(t, wf.SetDepartment("first", "技术部"))
	assert.NoError(t, wf.SetDepartment("second", "技术部"))
	assert.Equal(t, "", wf.Departments().First)
	assert.Equal(t, `["技术部"]`, wf.FieldValue(resume.KeyDepartments))
}

func TestSetPhotoSizeGate(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusDraft}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))

	small := []byte("fake-jpeg-bytes")
	assert.NoError(t, wf.SetPhoto(small))
	assert.Equal(t, base64.StdEncoding.EncodeToString(small), wf.FieldValue(resume.KeyPersonalPhoto))

	big := make([]byte, 5<<20+1)
	assert.ErrorIs(t, wf.SetPhoto(big), ErrPhotoTooLarge)
	assert.Equal(t, base64.StdEncoding.EncodeToString(small), wf.FieldValue(resume.KeyPersonalPhoto),
		"an oversized photo must not replace the staged one")
}

func TestSetInterviewTimeCannotAttend(t *testing.T) {
	fake := &fakeAPI{rsm: &resume.Resume{ResumeID: 7, Status: resume.StatusDraft}}
	wf := New(fake, 2)
	assert.NoError(t, wf.LoadOrCreate(context.Background()))

	assert.NoError(t, wf.SetInterviewTime("first", "周六上午"))
	assert.NoError(t, wf.SetInterviewTime("canAttend", "no"))
	assert.JSONEq(t, `{"first":"","second":"","canAttend":"no","customTime":""}`, wf.FieldValue(resume.KeyInterviewTime))
}
