package review

import (
	"context"
	"fmt"
	"sync"

	"go-club-recruit/internal/api"
	"go-club-recruit/internal/resume"
)

// API is the slice of the backend client the review workflow needs.
type API interface {
	SearchResumes(ctx context.Context, params api.SearchParams) (*api.Page, error)
	FetchResumeByID(ctx context.Context, resumeID int64) (*resume.Resume, error)
	SetResumeStatus(ctx context.Context, resumeID int64, status resume.Status) error
	ExportPDF(ctx context.Context, resumeID int64) (string, []byte, error)
}

// DefaultStatusFilter excludes drafts: admins see submitted-or-later.
const DefaultStatusFilter = "2,3,4,5"

// Sort keys the backend accepts.
const (
	SortByTime = "submittedAt"
	SortByName = "name"
)

// Query is the admin's view of the search: one-based page, semantic sort.
type Query struct {
	Text       string
	Department string
	Status     string
	SortBy     string
	Descending bool
	Page       int
	PageSize   int
}

func (q Query) params() api.SearchParams {
	page := q.Page
	if page < 1 {
		page = 1
	}
	text := NormalizeQueryText(q.Text)
	status := q.Status
	if status == "" {
		status = DefaultStatusFilter
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortByTime
	}
	order := "asc"
	if q.Descending {
		order = "desc"
	}
	// Free text goes out as the name filter only; FilterResumes does the
	// name-or-major match on the loaded page.
	return api.SearchParams{
		Page:               page - 1, // backend pages are zero-based
		Size:               q.PageSize,
		Name:               text,
		ExpectedDepartment: q.Department,
		Status:             status,
		Sort:               fmt.Sprintf("%s,%s", sortBy, order),
	}
}

// Workflow drives the admin side: enumerate, filter, transition, export.
// The loaded page is a working view only; the backend stays the source of
// truth and a full reload follows any mutating action that can change
// which resumes match the filter.
type Workflow struct {
	api API

	mu         sync.Mutex
	generation uint64
	query      Query
	page       []resume.Resume
	total      int
	current    *resume.Resume
}

func New(apiClient API) *Workflow {
	return &Workflow{api: apiClient}
}

// Search loads one page of resumes. Overlapping searches are resolved by
// generation tagging: a response only lands if no newer search started
// after it, so a slow early response can never overwrite a later one.
func (w *Workflow) Search(ctx context.Context, q Query) ([]resume.Resume, int, error) {
	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	page, err := w.api.SearchResumes(ctx, q.params())
	if err != nil {
		return nil, 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		// A newer search already started; its result wins.
		return page.Content, page.TotalElements, nil
	}
	w.query = q
	w.page = page.Content
	w.total = page.TotalElements
	return page.Content, page.TotalElements, nil
}

// Reload repeats the last search with unchanged parameters, preserving the
// admin's page number.
func (w *Workflow) Reload(ctx context.Context) ([]resume.Resume, int, error) {
	w.mu.Lock()
	q := w.query
	w.mu.Unlock()
	return w.Search(ctx, q)
}

// Page returns the currently loaded view and the matching total.
func (w *Workflow) Page() ([]resume.Resume, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page, w.total
}

// CurrentPage returns the remembered one-based page number, so returning
// from a detail view never resets pagination.
func (w *Workflow) CurrentPage() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.query.Page < 1 {
		return 1
	}
	return w.query.Page
}

// ViewDetail loads a single resume without touching the list state.
func (w *Workflow) ViewDetail(ctx context.Context, resumeID int64) (*resume.Resume, error) {
	r, err := w.api.FetchResumeByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.current = r
	w.mu.Unlock()
	return r, nil
}

// Detail returns the open detail view, if any.
func (w *Workflow) Detail() *resume.Resume {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Approve force-sets one resume to Accepted.
func (w *Workflow) Approve(ctx context.Context, resumeID int64) error {
	return w.setStatus(ctx, resumeID, resume.StatusAccepted)
}

// Reject force-sets one resume to Rejected.
func (w *Workflow) Reject(ctx context.Context, resumeID int64) error {
	return w.setStatus(ctx, resumeID, resume.StatusRejected)
}

// setStatus performs the single-resume transition and patches the loaded
// list entry and the open detail view optimistically; eventual consistency
// comes with the next full reload.
func (w *Workflow) setStatus(ctx context.Context, resumeID int64, status resume.Status) error {
	if err := w.api.SetResumeStatus(ctx, resumeID, status); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.page {
		if w.page[i].ResumeID == resumeID {
			w.page[i].Status = status
		}
	}
	if w.current != nil && w.current.ResumeID == resumeID {
		w.current.Status = status
	}
	return nil
}

// ReviewOutcome aggregates a non-atomic bulk transition: failures are
// independent per resume and partial success is a normal result.
type ReviewOutcome struct {
	Attempted int
	Succeeded int
	Failed    []error
}

// StartReview transitions every Submitted resume in the currently loaded
// view to UnderReview. All requests fire concurrently and every outcome is
// collected; one rejection cancels nothing. Callers should reload
// afterwards since transitioned resumes leave the Submitted filter bucket.
func (w *Workflow) StartReview(ctx context.Context) ReviewOutcome {
	w.mu.Lock()
	var ids []int64
	for _, r := range w.page {
		if r.Status == resume.StatusSubmitted {
			ids = append(ids, r.ResumeID)
		}
	}
	w.mu.Unlock()

	outcome := ReviewOutcome{Attempted: len(ids)}
	if len(ids) == 0 {
		return outcome
	}

	type result struct {
		id  int64
		err error
	}
	results := make(chan result, len(ids))
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			results <- result{id: id, err: w.api.SetResumeStatus(ctx, id, resume.StatusUnderReview)}
		}(id)
	}
	wg.Wait()
	close(results)

	w.mu.Lock()
	defer w.mu.Unlock()
	for res := range results {
		if res.err != nil {
			outcome.Failed = append(outcome.Failed, fmt.Errorf("resume %d: %w", res.id, res.err))
			continue
		}
		outcome.Succeeded++
		for i := range w.page {
			if w.page[i].ResumeID == res.id {
				w.page[i].Status = resume.StatusUnderReview
			}
		}
	}
	return outcome
}

// ExportPDF downloads one resume's PDF and returns its filename and bytes;
// persisting to disk is the caller's concern.
func (w *Workflow) ExportPDF(ctx context.Context, resumeID int64) (string, []byte, error) {
	return w.api.ExportPDF(ctx, resumeID)
}
