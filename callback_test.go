package northlight

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestSubmitFeedbackAsyncDeliversResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"feedback_id":"f_9"}`))
	})

	type outcome struct {
		id  string
		err error
	}
	done := make(chan outcome, 1)

	client.SubmitFeedbackAsync(context.Background(), "Add dark mode", "please", "", func(id string, err error) {
		done <- outcome{id, err}
	})

	select {
	case got := <-done:
		if got.err != nil {
			t.Fatalf("callback error = %v", got.err)
		}
		if got.id != "f_9" {
			t.Errorf("callback id = %s, want f_9", got.id)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback never invoked")
	}
}

func TestVoteAsyncDeliversError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})

	done := make(chan error, 1)
	client.VoteAsync(context.Background(), "f_1", func(count int, err error) {
		done <- err
	})

	select {
	case err := <-done:
		if !IsMissingUserIdentifier(err) {
			t.Errorf("callback error = %v, want missing user identifier", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback never invoked")
	}
}
