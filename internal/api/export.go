package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// ExportPDF downloads the rendered PDF for one resume. The filename comes
// from the content-disposition header when present, otherwise the
// deterministic fallback resume_<id>.pdf.
func (c *Client) ExportPDF(ctx context.Context, resumeID int64) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/resumes/export/pdf/%d", c.baseURL, resumeID), nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create export request: %w", err)
	}
	req.Header.Set("X-Request-ID", newRequestID())
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.OnAuthExpired != nil {
			c.OnAuthExpired()
		}
		return "", nil, &Error{Status: resp.StatusCode, Message: ErrUnauthorized.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("导出失败 (HTTP %d)", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read pdf stream: %w", err)
	}

	filename := fmt.Sprintf("resume_%d.pdf", resumeID)
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				filename = name
			}
		}
	}
	return filename, data, nil
}
