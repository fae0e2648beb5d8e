package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go-club-recruit/internal/resume"
)

// FetchFieldDefinitions returns the cycle's answerable fields.
func (c *Client) FetchFieldDefinitions(ctx context.Context, cycleID int) ([]resume.FieldDefinition, error) {
	var defs []resume.FieldDefinition
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resumes/fields/%d", cycleID), nil, &defs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch field definitions: %w", err)
	}
	return defs, nil
}

// FetchResume returns the applicant's resume for the cycle, or ErrNotFound
// when none exists yet.
func (c *Client) FetchResume(ctx context.Context, cycleID int) (*resume.Resume, error) {
	var r resume.Resume
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resumes/cycle/%d", cycleID), nil, &r); err != nil {
		return nil, err
	}
	if r.Status == 0 {
		r.Status = resume.StatusDraft
	}
	return &r, nil
}

// CreateResume creates an empty draft resume for the cycle.
func (c *Client) CreateResume(ctx context.Context, cycleID int) (*resume.Resume, error) {
	var r resume.Resume
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/resumes/cycle/%d", cycleID), nil, &r); err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	if r.Status == 0 {
		r.Status = resume.StatusDraft
	}
	return &r, nil
}

// FetchFieldValues returns the currently persisted answers.
func (c *Client) FetchFieldValues(ctx context.Context, cycleID int) ([]resume.SimpleField, error) {
	var vals []resume.SimpleField
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resumes/cycle/%d/field-values", cycleID), nil, &vals)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch field values: %w", err)
	}
	return vals, nil
}

// SaveFieldValues persists the given answers, leaving status untouched.
func (c *Client) SaveFieldValues(ctx context.Context, cycleID int, values []resume.FieldValue) error {
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/resumes/cycle/%d/field-values", cycleID), values, nil)
	if err != nil {
		return fmt.Errorf("failed to save field values: %w", err)
	}
	return nil
}

// UpdateFieldValues bulk-updates persisted answers by valueId.
func (c *Client) UpdateFieldValues(ctx context.Context, cycleID int, values []resume.FieldValue) error {
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/resumes/cycle/%d", cycleID), values, nil)
	if err != nil {
		return fmt.Errorf("failed to update field values: %w", err)
	}
	return nil
}

type submitRequest struct {
	ResumeID int64 `json:"resumeId"`
}

// SubmitResume flips the resume Draft->Submitted. A duplicate submission
// surfaces as ErrAlreadySubmitted.
func (c *Client) SubmitResume(ctx context.Context, cycleID int, resumeID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/resumes/cycle/%d/submit", cycleID), submitRequest{ResumeID: resumeID}, nil)
}

// SearchParams is the admin search query at the transport boundary: page is
// zero-based here, one-based in every user-facing surface.
type SearchParams struct {
	Page               int
	Size               int
	Name               string
	Major              string
	ExpectedDepartment string
	Status             string
	Sort               string
}

// Page is one page of admin search results.
type Page struct {
	Content       []resume.Resume `json:"content"`
	TotalElements int             `json:"totalElements"`
	Size          int             `json:"size"`
	Number        int             `json:"number"`
}

// SearchResumes returns one page of resumes matching the filter.
func (c *Client) SearchResumes(ctx context.Context, params SearchParams) (*Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	if params.Major != "" {
		q.Set("major", params.Major)
	}
	if params.ExpectedDepartment != "" {
		q.Set("expectedDepartment", params.ExpectedDepartment)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}

	var page Page
	if err := c.do(ctx, http.MethodGet, "/api/resumes/search?"+q.Encode(), nil, &page); err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	return &page, nil
}

// FetchResumeByID returns one resume with all its fields.
func (c *Client) FetchResumeByID(ctx context.Context, resumeID int64) (*resume.Resume, error) {
	var r resume.Resume
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resumes/%d", resumeID), nil, &r); err != nil {
		return nil, fmt.Errorf("failed to fetch resume %d: %w", resumeID, err)
	}
	return &r, nil
}

// SetResumeStatus force-sets one resume's status. There is no bulk
// endpoint; batch transitions are N independent calls.
func (c *Client) SetResumeStatus(ctx context.Context, resumeID int64, status resume.Status) error {
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/resumes/%d/status/%d", resumeID, status), nil, nil)
	if err != nil {
		return fmt.Errorf("failed to set resume %d status to %s: %w", resumeID, status, err)
	}
	return nil
}
