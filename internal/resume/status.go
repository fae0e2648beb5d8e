package resume

// Status is the backend's integer-coded resume lifecycle state.
type Status int

const (
	StatusDraft       Status = 1
	StatusSubmitted   Status = 2
	StatusUnderReview Status = 3
	StatusAccepted    Status = 4
	StatusRejected    Status = 5
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "草稿"
	case StatusSubmitted:
		return "已提交"
	case StatusUnderReview:
		return "评审中"
	case StatusAccepted:
		return "已录取"
	case StatusRejected:
		return "已拒绝"
	}
	return "未知"
}

func (s Status) Valid() bool {
	return s >= StatusDraft && s <= StatusRejected
}

// Terminal reports whether the applicant can take no further action.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanEdit is the applicant-side editability predicate. The server is the
// actual enforcer; this copy only gates the local UI and staged edits.
func CanEdit(s Status) bool {
	return s == StatusDraft || s == StatusSubmitted
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another. Applicants only ever drive Draft->Submitted (and the
// status-preserving Submitted->Submitted update); admins force-set
// UnderReview, Accepted and Rejected. Nothing ever returns to Draft.
func CanTransition(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	switch to {
	case StatusDraft:
		return false
	case StatusSubmitted:
		return from == StatusDraft || from == StatusSubmitted
	case StatusUnderReview:
		return from == StatusSubmitted
	case StatusAccepted, StatusRejected:
		return from == StatusDraft || from == StatusSubmitted || from == StatusUnderReview
	}
	return false
}
