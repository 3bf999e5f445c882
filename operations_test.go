package northlight

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestSubmitFeedbackValidation(t *testing.T) {
	// No network call should be made for invalid input
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for invalid input")
	})

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"empty title", "", "desc"},
		{"title too long", strings.Repeat("a", 256), "desc"},
		{"empty description", "Add dark mode", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.SubmitFeedback(context.Background(), tt.title, tt.description, "")
			if !IsInvalidInput(err) {
				t.Errorf("error = %v, want invalid input", err)
			}
		})
	}
}

func TestSubmitFeedbackTitleBoundaries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"feedback_id":"f_1"}`))
	})

	for _, length := range []int{1, 255} {
		title := strings.Repeat("a", length)
		if _, err := client.SubmitFeedback(context.Background(), title, "desc", ""); err != nil {
			t.Errorf("title length %d rejected: %v", length, err)
		}
	}
}

func TestSubmitFeedback(t *testing.T) {
	var gotPath string
	var gotBody feedbackSubmission

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"success":true,"feedback_id":"f_42"}`))
	})
	client.Config().SetUserEmail("user@example.com")

	id, err := client.SubmitFeedback(context.Background(), "Add dark mode", "please", "")
	if err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}

	if id != "f_42" {
		t.Errorf("feedback id = %s, want f_42", id)
	}
	if gotPath != "/api/v1/feedback" {
		t.Errorf("path = %s, want /api/v1/feedback", gotPath)
	}
	if gotBody.Title != "Add dark mode" || gotBody.Description != "please" {
		t.Errorf("body = %+v", gotBody)
	}
	if gotBody.UserEmail != "user@example.com" {
		t.Errorf("user_email = %q, want user@example.com", gotBody.UserEmail)
	}
	if gotBody.DeviceInfo.Model != "test-device" {
		t.Errorf("device_info.model = %q, want test-device", gotBody.DeviceInfo.Model)
	}
	// Basic snapshots must not carry the extended bug-report fields
	if gotBody.DeviceInfo.FreeMemory != "" || gotBody.DeviceInfo.NetworkType != "" {
		t.Errorf("feedback snapshot has extended fields: %+v", gotBody.DeviceInfo)
	}
}

func TestReportBug(t *testing.T) {
	var gotPath string
	var gotBody bugSubmission

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"success":true,"bug_id":"b_7"}`))
	})

	id, err := client.ReportBug(context.Background(), "Crash on launch", "it crashes", SeverityHigh, "1. open app")
	if err != nil {
		t.Fatalf("ReportBug() error = %v", err)
	}

	if id != "b_7" {
		t.Errorf("bug id = %s, want b_7", id)
	}
	if gotPath != "/api/v1/bugs" {
		t.Errorf("path = %s, want /api/v1/bugs", gotPath)
	}
	if gotBody.Severity != SeverityHigh {
		t.Errorf("severity = %s, want high", gotBody.Severity)
	}
	if gotBody.StepsToReproduce != "1. open app" {
		t.Errorf("steps_to_reproduce = %q", gotBody.StepsToReproduce)
	}
	// Bug snapshots carry the extended readings
	if gotBody.DeviceInfo.FreeMemory != "512MB" {
		t.Errorf("free_memory = %q, want 512MB", gotBody.DeviceInfo.FreeMemory)
	}
	if gotBody.DeviceInfo.NetworkType != "wifi" {
		t.Errorf("network_type = %q, want wifi", gotBody.DeviceInfo.NetworkType)
	}
	if gotBody.DeviceInfo.BatteryLevel == nil || *gotBody.DeviceInfo.BatteryLevel != 0.8 {
		t.Errorf("battery_level = %v, want 0.8", gotBody.DeviceInfo.BatteryLevel)
	}
}

func TestReportBugSeverityDefaultsToMedium(t *testing.T) {
	var gotBody bugSubmission

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"success":true,"bug_id":"b_1"}`))
	})

	if _, err := client.ReportBug(context.Background(), "t", "d", "", ""); err != nil {
		t.Fatalf("ReportBug() error = %v", err)
	}
	if gotBody.Severity != SeverityMedium {
		t.Errorf("severity = %s, want medium", gotBody.Severity)
	}
}

func TestReportBugRejectsUnknownSeverity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for invalid severity")
	})

	_, err := client.ReportBug(context.Background(), "t", "d", Severity("urgent"), "")
	if !IsInvalidInput(err) {
		t.Errorf("error = %v, want invalid input", err)
	}
}

func TestVote(t *testing.T) {
	var gotPath string
	var gotBody voteRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"success":true,"vote_count":5}`))
	})
	client.Config().SetUserIdentifier("device-1")

	count, err := client.Vote(context.Background(), "f_42")
	if err != nil {
		t.Fatalf("Vote() error = %v", err)
	}

	if count != 5 {
		t.Errorf("vote count = %d, want 5", count)
	}
	if gotPath != "/api/v1/feedback/f_42/vote" {
		t.Errorf("path = %s, want /api/v1/feedback/f_42/vote", gotPath)
	}
	if gotBody.UserIdentifier != "device-1" {
		t.Errorf("user_identifier = %q, want device-1", gotBody.UserIdentifier)
	}
}

func TestVoteRequiresUserIdentifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request without user identifier")
	})

	_, err := client.Vote(context.Background(), "f_42")
	if !IsMissingUserIdentifier(err) {
		t.Errorf("error = %v, want missing user identifier", err)
	}
}

func TestGetPublicFeedback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Write([]byte(`{"success":true,"feedback":[
			{"id":"f_1","title":"Dark mode","description":"d","status":"in_progress","vote_count":12,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"},
			{"id":"f_2","title":"Widgets","description":"d","status":"pending","created_at":"2024-01-03T00:00:00Z","updated_at":"2024-01-03T00:00:00Z"}
		]}`))
	})

	items, err := client.GetPublicFeedback(context.Background())
	if err != nil {
		t.Fatalf("GetPublicFeedback() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].VoteCount != 12 {
		t.Errorf("items[0].VoteCount = %d, want 12", items[0].VoteCount)
	}
	if items[1].VoteCount != 0 {
		t.Errorf("items[1].VoteCount = %d, want 0 (default when absent)", items[1].VoteCount)
	}
	if items[0].Status != StatusInProgress {
		t.Errorf("items[0].Status = %s, want in_progress", items[0].Status)
	}
}

func TestGetRoadmap(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/roadmap" {
			t.Errorf("path = %s, want /api/v1/roadmap", r.URL.Path)
		}
		w.Write([]byte(`{"roadmap_items":[
			{"id":"r_1","feature":{"title":"Teams","description":"shared projects"},"position":1,"estimated_date":"2024-09-01"}
		]}`))
	})

	items, err := client.GetRoadmap(context.Background())
	if err != nil {
		t.Fatalf("GetRoadmap() error = %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Feature.Title != "Teams" || items[0].Position != 1 {
		t.Errorf("items[0] = %+v", items[0])
	}
}
