package northlight

import (
	"encoding/json"
	"testing"
)

func TestFeedbackItemVoteCountDefault(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"absent defaults to zero", `{"id":"f_1","title":"t","description":"d","status":"pending","created_at":"c","updated_at":"u"}`, 0},
		{"zero preserved", `{"id":"f_1","title":"t","description":"d","status":"pending","vote_count":0,"created_at":"c","updated_at":"u"}`, 0},
		{"value preserved", `{"id":"f_1","title":"t","description":"d","status":"pending","vote_count":37,"created_at":"c","updated_at":"u"}`, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item FeedbackItem
			if err := json.Unmarshal([]byte(tt.body), &item); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if item.VoteCount != tt.want {
				t.Errorf("VoteCount = %d, want %d", item.VoteCount, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPending, "Pending"},
		{StatusSuggested, "Suggested"},
		{StatusApproved, "Approved"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{StatusRejected, "Rejected"},
		// Unknown statuses must render as themselves, never crash
		{Status("under_review"), "under_review"},
		{Status(""), ""},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("Status(%q).Label() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		if !s.Valid() {
			t.Errorf("Severity(%q).Valid() = false", s)
		}
	}
	for _, s := range []Severity{"", "urgent", "MEDIUM"} {
		if s.Valid() {
			t.Errorf("Severity(%q).Valid() = true", s)
		}
	}
}

func TestApplyVote(t *testing.T) {
	items := []FeedbackItem{
		{ID: "f_1", VoteCount: 3},
		{ID: "f_2", VoteCount: 9},
	}

	ApplyVote(items, "f_2", 10)
	if items[1].VoteCount != 10 {
		t.Errorf("items[1].VoteCount = %d, want 10", items[1].VoteCount)
	}
	if items[0].VoteCount != 3 {
		t.Errorf("items[0].VoteCount changed to %d", items[0].VoteCount)
	}

	// Unknown id is a no-op
	ApplyVote(items, "f_404", 99)
	if items[0].VoteCount != 3 || items[1].VoteCount != 10 {
		t.Error("ApplyVote with unknown id mutated the list")
	}
}

func TestSubmissionWireShape(t *testing.T) {
	sub := feedbackSubmission{
		Title:       "t",
		Description: "d",
	}
	data, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var raw map[string]json.RawMessage
	json.Unmarshal(data, &raw)

	// Optional fields must be omitted, not sent as empty strings
	for _, key := range []string{"category", "user_email"} {
		if _, present := raw[key]; present {
			t.Errorf("empty %s should be omitted from the wire", key)
		}
	}
	for _, key := range []string{"title", "description", "device_info"} {
		if _, present := raw[key]; !present {
			t.Errorf("%s missing from the wire", key)
		}
	}
}
