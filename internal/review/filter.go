package review

import (
	"strings"

	"go-club-recruit/internal/resume"
)

// FilterResumes narrows an already-loaded page locally, keeping resumes
// whose name or major contains the normalized text. Empty text keeps
// everything. The backend only filters on name, so this is where a major
// match happens.
func FilterResumes(list []resume.Resume, text string) []resume.Resume {
	text = NormalizeQueryText(text)
	if text == "" {
		return list
	}
	var out []resume.Resume
	for _, r := range list {
		if strings.Contains(NormalizeQueryText(r.Name()), text) ||
			strings.Contains(NormalizeQueryText(r.Major()), text) {
			out = append(out, r)
		}
	}
	return out
}
