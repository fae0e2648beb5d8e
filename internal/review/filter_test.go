package review

import (
	"testing"

	"go-club-recruit/internal/resume"

	"github.com/stretchr/testify/assert"
)

func applicantResume(id int64, name, major string) resume.Resume {
	return resume.Resume{
		ResumeID: id,
		SimpleFields: []resume.SimpleField{
			{FieldKey: "name", FieldLabel: "姓名", FieldValue: name},
			{FieldKey: "major", FieldLabel: "专业", FieldValue: major},
		},
	}
}

func TestFilterResumesMatchesNameOrMajor(t *testing.T) {
	list := []resume.Resume{
		applicantResume(1, "张三", "计算机科学"),
		applicantResume(2, "李四", "软件工程"),
		applicantResume(3, "王计算", "数学"),
	}

	out := FilterResumes(list, "计算")
	assert.Len(t, out, 2, "a hit on either name or major keeps the resume")
	assert.Equal(t, int64(1), out[0].ResumeID)
	assert.Equal(t, int64(3), out[1].ResumeID)
}

func TestFilterResumesNormalizesText(t *testing.T) {
	list := []resume.Resume{
		applicantResume(1, "Nguyễn Văn A", "Computer Science"),
		applicantResume(2, "李四", "软件工程"),
	}

	out := FilterResumes(list, "  NGUYEN ")
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ResumeID)
}

func TestFilterResumesEmptyTextKeepsAll(t *testing.T) {
	list := []resume.Resume{applicantResume(1, "张三", "数学")}
	assert.Equal(t, list, FilterResumes(list, "   "))
}
