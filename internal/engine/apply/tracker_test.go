package apply

import (
	"context"
	"sync"
	"testing"
)

// resetTracker resets the singleton so each test gets a fresh DB.
func resetTracker(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	trackerDB = nil
	trackerErr = nil
	trackerOnce = sync.Once{}
}

func TestTrackApplicationBasic(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	result, err := TrackApplication(ctx, ApplicationTrackInput{
		JobTitle:       "Senior Go Developer",
		Company:        "Stripe",
		URL:            "https://stripe.com/jobs/123",
		Status:         "applied",
		CandidateEmail: "Jane.Roe@Example.com",
		Notes:          "Referred by a former colleague",
		Location:       "Remote",
	})
	if err != nil {
		t.Fatalf("TrackApplication error: %v", err)
	}
	if result.ID <= 0 {
		t.Errorf("expected positive ID, got %d", result.ID)
	}

	list, err := ListApplications(ctx, ApplicationListInput{})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if list.Total != 1 || len(list.Applications) != 1 {
		t.Fatalf("total = %d, len = %d", list.Total, len(list.Applications))
	}
	app := list.Applications[0]
	if app.Status != StatusApplied {
		t.Errorf("status = %q", app.Status)
	}
	if app.CandidateEmail != "jane.roe@example.com" {
		t.Errorf("email = %q, want lowercased", app.CandidateEmail)
	}
}

func TestTrackApplicationDefaults(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	result, err := TrackApplication(ctx, ApplicationTrackInput{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})
	if err != nil {
		t.Fatalf("TrackApplication error: %v", err)
	}

	list, err := ListApplications(ctx, ApplicationListInput{Status: "saved"})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if len(list.Applications) != 1 || list.Applications[0].ID != result.ID {
		t.Fatalf("saved filter missed the new row: %+v", list)
	}
}

func TestTrackApplicationInvalidInput(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	if _, err := TrackApplication(ctx, ApplicationTrackInput{JobTitle: "Only Title"}); err == nil {
		t.Error("expected error when company is missing")
	}
	if _, err := TrackApplication(ctx, ApplicationTrackInput{JobTitle: "T", Company: "C", Status: "ghosted"}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestUpdateApplication(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	added, err := TrackApplication(ctx, ApplicationTrackInput{JobTitle: "SRE", Company: "Initech"})
	if err != nil {
		t.Fatalf("TrackApplication error: %v", err)
	}

	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{ID: added.ID, Status: "interviewing", Notes: "Phone screen done"}); err != nil {
		t.Fatalf("UpdateApplication error: %v", err)
	}

	list, err := ListApplications(ctx, ApplicationListInput{Status: "interviewing"})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if len(list.Applications) != 1 {
		t.Fatalf("len = %d", len(list.Applications))
	}
	if list.Applications[0].Notes != "Phone screen done" {
		t.Errorf("notes = %q", list.Applications[0].Notes)
	}
}

func TestUpdateApplicationErrors(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{Status: "applied"}); err == nil {
		t.Error("expected error without id")
	}
	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{ID: 1}); err == nil {
		t.Error("expected error without status or notes")
	}
	if _, err := UpdateApplication(ctx, ApplicationUpdateInput{ID: 9999, Status: "applied"}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestListApplicationsEmpty(t *testing.T) {
	resetTracker(t)

	list, err := ListApplications(context.Background(), ApplicationListInput{})
	if err != nil {
		t.Fatalf("ListApplications error: %v", err)
	}
	if list.Applications == nil {
		t.Error("applications should be an empty slice, not nil")
	}
	if list.Total != 0 {
		t.Errorf("total = %d", list.Total)
	}
}
