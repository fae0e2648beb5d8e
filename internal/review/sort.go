package review

import (
	"sort"
	"strings"

	"go-club-recruit/internal/resume"
)

// SortResumes orders a loaded page locally, for re-sorting without another
// round trip. Resumes without a submission time sort last either way.
func SortResumes(list []resume.Resume, by string, descending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if by == SortByName {
			if descending {
				i, j = j, i
			}
			return strings.Compare(list[i].Name(), list[j].Name()) < 0
		}
		a, b := list[i].SubmittedAt, list[j].SubmittedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case descending:
			return b.Before(*a)
		default:
			return a.Before(*b)
		}
	})
}
