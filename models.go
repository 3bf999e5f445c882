package northlight

import (
	"github.com/northlight/northlight-go/deviceinfo"
)

// Status is the server-assigned lifecycle state of a feedback item. The set
// of values is open: servers may introduce new states, and unknown values
// must pass through the client unchanged.
type Status string

// Known feedback statuses
const (
	StatusPending    Status = "pending"
	StatusSuggested  Status = "suggested"
	StatusApproved   Status = "approved"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// Label returns the display string for a status. Unknown statuses render
// as themselves.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusSuggested:
		return "Suggested"
	case StatusApproved:
		return "Approved"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// Severity is the priority level of a bug report. Unlike Status this is a
// closed set; values outside it are rejected before any network call.
type Severity string

// Bug report severities
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is one of the four defined severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// FeedbackItem is a user-submitted feature request as the server reports it.
// vote_count is frequently absent from list payloads; Go's zero value gives
// it the required default of 0.
type FeedbackItem struct {
	ID          string               `json:"id"`
	ProjectID   string               `json:"project_id,omitempty"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      Status               `json:"status"`
	Category    string               `json:"category,omitempty"`
	Platform    string               `json:"platform,omitempty"`
	UserEmail   string               `json:"user_email,omitempty"`
	DeviceInfo  *deviceinfo.Snapshot `json:"device_info,omitempty"`
	VoteCount   int                  `json:"vote_count"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// RoadmapItem is a planned feature on the public roadmap
type RoadmapItem struct {
	ID            string  `json:"id"`
	Feature       Feature `json:"feature"`
	Position      int     `json:"position"`
	EstimatedDate string  `json:"estimated_date"`
}

// Feature describes the feature a roadmap item tracks
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ApplyVote bumps the vote count of the matching item in an in-memory list
// after a server-confirmed vote. It is a pure post-processing step for
// presentation; the server-confirmed value replaces it on the next refresh.
func ApplyVote(items []FeedbackItem, feedbackID string, newCount int) {
	for i := range items {
		if items[i].ID == feedbackID {
			items[i].VoteCount = newCount
			return
		}
	}
}

// feedbackSubmission is the POST /feedback request body
type feedbackSubmission struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category,omitempty"`
	UserEmail   string              `json:"user_email,omitempty"`
	DeviceInfo  deviceinfo.Snapshot `json:"device_info"`
}

// bugSubmission is the POST /bugs request body
type bugSubmission struct {
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Severity         Severity            `json:"severity"`
	StepsToReproduce string              `json:"steps_to_reproduce,omitempty"`
	UserEmail        string              `json:"user_email,omitempty"`
	DeviceInfo       deviceinfo.Snapshot `json:"device_info"`
}

// voteRequest is the POST /feedback/{id}/vote request body
type voteRequest struct {
	UserIdentifier string `json:"user_identifier"`
}

// feedbackResponse is the POST /feedback response
type feedbackResponse struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedback_id"`
}

// bugResponse is the POST /bugs response
type bugResponse struct {
	Success bool   `json:"success"`
	BugID   string `json:"bug_id"`
}

// voteResponse is the POST /feedback/{id}/vote response
type voteResponse struct {
	Success   bool `json:"success"`
	VoteCount int  `json:"vote_count"`
}

// feedbackListResponse is the GET /feedback response
type feedbackListResponse struct {
	Success  bool           `json:"success"`
	Feedback []FeedbackItem `json:"feedback"`
}

// roadmapResponse is the GET /roadmap response
type roadmapResponse struct {
	RoadmapItems []RoadmapItem `json:"roadmap_items"`
}
