package application

import "time"

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusSubmitted, StatusReviewed, StatusAccepted, StatusRejected:
		return Status(s), true
	default:
		return "", false
	}
}

// Application snapshots the applicant and the job title at submission
// time; later profile or job edits do not rewrite history.
type Application struct {
	ID             int64     `json:"id"`
	ApplicantID    int64     `json:"applicantId"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	JobSlug        string    `json:"jobSlug"`
	JobTitle       string    `json:"jobTitle"`
	CV             string    `json:"cv"`
	CoverLetter    string    `json:"coverLetter"`
	Status         Status    `json:"status"`
	AppliedAt      time.Time `json:"appliedAt"`
}
