package apply

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quantipeak/go_apply/internal/engine"
)

// ApplicationStatus is the stage of a tracked application.
type ApplicationStatus string

const (
	StatusSaved        ApplicationStatus = "saved"
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffer        ApplicationStatus = "offer"
	StatusRejected     ApplicationStatus = "rejected"
)

// Application is a single entry in the application tracker.
type Application struct {
	ID             int64             `json:"id"`
	JobTitle       string            `json:"job_title"`
	Company        string            `json:"company"`
	URL            string            `json:"url,omitempty"`
	Status         ApplicationStatus `json:"status"`
	CandidateEmail string            `json:"candidate_email,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Location       string            `json:"location,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// ApplicationTrackInput is the input for application_track.
type ApplicationTrackInput struct {
	JobTitle       string `json:"job_title"`
	Company        string `json:"company"`
	URL            string `json:"url,omitempty"`
	Status         string `json:"status,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Location       string `json:"location,omitempty"`
}

// ApplicationListInput is the input for application_list.
type ApplicationListInput struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// ApplicationUpdateInput is the input for application_update.
type ApplicationUpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ApplicationResult is the output for track/update operations.
type ApplicationResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ApplicationListResult is the output for list operations.
type ApplicationListResult struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
}

var (
	trackerDB   *sql.DB
	trackerOnce sync.Once
	trackerErr  error
)

// openTrackerDB opens (or creates) the SQLite tracker database.
func openTrackerDB() (*sql.DB, error) {
	trackerOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".go_apply")
		if err := os.MkdirAll(dir, 0750); err != nil {
			trackerErr = fmt.Errorf("tracker: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "tracker.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			trackerErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initTrackerSchema(db); err != nil {
			trackerErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		trackerDB = db
	})
	return trackerDB, trackerErr
}

func initTrackerSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS applications (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		job_title       TEXT NOT NULL,
		company         TEXT NOT NULL,
		url             TEXT,
		status          TEXT NOT NULL DEFAULT 'saved',
		candidate_email TEXT,
		notes           TEXT,
		location        TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`)
	return err
}

func validStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// TrackApplication saves a new application to the tracker.
func TrackApplication(_ context.Context, input ApplicationTrackInput) (*ApplicationResult, error) {
	if input.JobTitle == "" || input.Company == "" {
		return nil, errors.New("application_track: job_title and company are required")
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusSaved)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("application_track: invalid status %q (valid: saved, applied, interviewing, offer, rejected)", status)
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO applications (job_title, company, url, status, candidate_email, notes, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.JobTitle, input.Company, input.URL, status,
		strings.ToLower(strings.TrimSpace(input.CandidateEmail)),
		input.Notes, input.Location, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("application_track: insert: %w", err)
	}

	engine.IncrTrackerWrites()
	id, _ := res.LastInsertId()
	return &ApplicationResult{
		ID:      id,
		Message: fmt.Sprintf("Application for '%s' at '%s' tracked with status '%s' (id=%d)", input.JobTitle, input.Company, status, id),
	}, nil
}

// ListApplications returns tracked applications, optionally filtered by status.
func ListApplications(_ context.Context, input ApplicationListInput) (*ApplicationListResult, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("application_list: invalid status %q", status)
		}
		rows, err = db.Query(
			`SELECT id, job_title, company, url, status, candidate_email, notes, location, created_at, updated_at
			 FROM applications WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, job_title, company, url, status, candidate_email, notes, location, created_at, updated_at
			 FROM applications ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("application_list: query: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		var url, email, notes, location sql.NullString
		if err := rows.Scan(&a.ID, &a.JobTitle, &a.Company, &url, &a.Status,
			&email, &notes, &location, &a.CreatedAt, &a.UpdatedAt); err != nil {
			continue
		}
		a.URL = url.String
		a.CandidateEmail = email.String
		a.Notes = notes.String
		a.Location = location.String
		apps = append(apps, a)
	}

	var total int
	if input.Status != "" {
		db.QueryRow(`SELECT COUNT(*) FROM applications WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&total) //nolint:errcheck
	}

	if apps == nil {
		apps = []Application{}
	}
	return &ApplicationListResult{Applications: apps, Total: total}, nil
}

// UpdateApplication updates the status and/or notes of a tracked application.
func UpdateApplication(_ context.Context, input ApplicationUpdateInput) (*ApplicationResult, error) {
	if input.ID <= 0 {
		return nil, errors.New("application_update: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("application_update: at least one of status or notes must be provided")
	}

	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(input.Status)
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("application_update: invalid status %q", status)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var res sql.Result
	switch {
	case status != "" && input.Notes != "":
		res, err = db.Exec(`UPDATE applications SET status=?, notes=?, updated_at=? WHERE id=?`,
			status, input.Notes, now, input.ID)
	case status != "":
		res, err = db.Exec(`UPDATE applications SET status=?, updated_at=? WHERE id=?`,
			status, now, input.ID)
	default:
		res, err = db.Exec(`UPDATE applications SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("application_update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("application_update: no application with id %d", input.ID)
	}

	engine.IncrTrackerWrites()
	return &ApplicationResult{
		ID:      input.ID,
		Message: fmt.Sprintf("Application #%d updated successfully", input.ID),
	}, nil
}
