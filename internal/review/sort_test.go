package review

import (
	"testing"
	"time"

	"go-club-recruit/internal/resume"

	"github.com/stretchr/testify/assert"
)

func namedResume(id int64, name string, submitted *time.Time) resume.Resume {
	return resume.Resume{
		ResumeID:    id,
		SubmittedAt: submitted,
		SimpleFields: []resume.SimpleField{
			{FieldKey: "name", FieldLabel: "姓名", FieldValue: name},
		},
	}
}

func TestSortResumesBySubmittedAt(t *testing.T) {
	early := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)
	list := []resume.Resume{
		namedResume(1, "乙", &late),
		namedResume(2, "甲", nil),
		namedResume(3, "丙", &early),
	}

	SortResumes(list, SortByTime, false)
	assert.Equal(t, int64(3), list[0].ResumeID)
	assert.Equal(t, int64(1), list[1].ResumeID)
	assert.Equal(t, int64(2), list[2].ResumeID, "unsubmitted resumes sort last")

	SortResumes(list, SortByTime, true)
	assert.Equal(t, int64(1), list[0].ResumeID)
}

func TestSortResumesByName(t *testing.T) {
	list := []resume.Resume{
		namedResume(1, "b", nil),
		namedResume(2, "a", nil),
		namedResume(3, "c", nil),
	}

	SortResumes(list, SortByName, false)
	assert.Equal(t, "a", list[0].Name())
	assert.Equal(t, "c", list[2].Name())
}
