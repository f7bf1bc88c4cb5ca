package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("fifa", 40*time.Millisecond, nil)
	r.RecordProviderAttempt("fifa", 80*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("fifa")
	if snap.Calls != 2 {
		t.Errorf("Calls = %d, want 2", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Errorf("Errors = %d, want 1", snap.Errors)
	}
	if snap.LastCallLatency != 80*time.Millisecond {
		t.Errorf("LastCallLatency = %v", snap.LastCallLatency)
	}
}

func TestRecordRateLimit(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("fifa", 30*time.Second)
	r.RecordRateLimit("fifa", 0)

	snap := r.Snapshot("fifa")
	if snap.RateLimitHits != 2 {
		t.Errorf("RateLimitHits = %d, want 2", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 30*time.Second {
		t.Errorf("LastRetryAfter = %v, want 30s", snap.LastRetryAfter)
	}
}

func TestRecordNotification(t *testing.T) {
	r := NewRecorder()

	r.RecordNotification("team-channel", 10*time.Millisecond, nil)
	r.RecordNotification("team-channel", 10*time.Millisecond, nil)
	r.RecordNotification("team-channel", 10*time.Millisecond, errors.New("webhook 500"))

	if got := r.NotificationsSent("team-channel"); got != 2 {
		t.Errorf("NotificationsSent = %d, want 2", got)
	}
	if got := r.NotificationsFailed("team-channel"); got != 1 {
		t.Errorf("NotificationsFailed = %d, want 1", got)
	}
	if got := r.NotificationsSent("other"); got != 0 {
		t.Errorf("NotificationsSent(other) = %d, want 0", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordProviderAttempt("fifa", time.Millisecond, nil)
	r.RecordRateLimit("fifa", time.Second)
	r.RecordNotification("dest", time.Millisecond, nil)
	r.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	r.RecordPollCycle(time.Millisecond, nil)

	if snap := r.Snapshot("fifa"); snap.Calls != 0 {
		t.Errorf("nil recorder snapshot non-zero: %+v", snap)
	}
}

func TestUnknownProviderSnapshot(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("nope"); snap != (Snapshot{}) {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}
