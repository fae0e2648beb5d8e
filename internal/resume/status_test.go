package resume

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		to       Status
		expected bool
	}{
		{
			name:     "Draft to Submitted",
			from:     StatusDraft,
			to:       StatusSubmitted,
			expected: true,
		},
		{
			name:     "Submitted resave keeps Submitted",
			from:     StatusSubmitted,
			to:       StatusSubmitted,
			expected: true,
		},
		{
			name:     "Submitted to UnderReview",
			from:     StatusSubmitted,
			to:       StatusUnderReview,
			expected: true,
		},
		{
			name:     "Draft cannot skip to UnderReview",
			from:     StatusDraft,
			to:       StatusUnderReview,
			expected: false,
		},
		{
			name:     "UnderReview to Accepted",
			from:     StatusUnderReview,
			to:       StatusAccepted,
			expected: true,
		},
		{
			name:     "Direct reject from Submitted",
			from:     StatusSubmitted,
			to:       StatusRejected,
			expected: true,
		},
		{
			name:     "No return to Draft",
			from:     StatusSubmitted,
			to:       StatusDraft,
			expected: false,
		},
		{
			name:     "Accepted is terminal",
			from:     StatusAccepted,
			to:       StatusRejected,
			expected: false,
		},
		{
			name:     "Rejected is terminal",
			from:     StatusRejected,
			to:       StatusUnderReview,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanTransition(tt.from, tt.to)
			if got != tt.expected {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestCanEdit(t *testing.T) {
	editable := map[Status]bool{
		StatusDraft:       true,
		StatusSubmitted:   true,
		StatusUnderReview: false,
		StatusAccepted:    false,
		StatusRejected:    false,
	}
	for status, expected := range editable {
		if got := CanEdit(status); got != expected {
			t.Errorf("CanEdit(%v) = %v, want %v", status, got, expected)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusAccepted.Terminal() || !StatusRejected.Terminal() {
		t.Error("Accepted and Rejected should be terminal")
	}
	if StatusUnderReview.Terminal() {
		t.Error("UnderReview should not be terminal")
	}
}
