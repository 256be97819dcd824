package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// Run status values
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one recorded build of the deck
type Run struct {
	ID            string        `json:"id"`
	Output        string        `json:"output"`
	Slides        int           `json:"slides"`
	Elements      int           `json:"elements"`
	Tables        int           `json:"tables"`
	SlideElements []int         `json:"slideElements"`
	Bytes         int64         `json:"bytes"`
	Status        string        `json:"status"`
	Error         string        `json:"error,omitempty"`
	StartedAt     time.Time     `json:"startedAt"`
	Duration      time.Duration `json:"duration"`
}

// NewRun summarizes a built deck structure. err marks the run as failed.
func NewRun(output string, st deck.Structure, size int64, started time.Time, err error) Run {
	r := Run{
		Output:        output,
		Slides:        st.Slides,
		Tables:        len(st.TableRows),
		SlideElements: st.Elements,
		Bytes:         size,
		Status:        StatusOK,
		StartedAt:     started,
		Duration:      time.Since(started),
	}
	for _, n := range st.Elements {
		r.Elements += n
	}
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
	}
	return r
}

// HistoryService records and lists build runs
type HistoryService struct {
	db *sql.DB
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(db *sql.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record stores a run and returns its id. A missing id is generated.
func (s *HistoryService) Record(ctx context.Context, run Run) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("database connection is nil")
	}
	if run.Output == "" {
		return "", fmt.Errorf("output is required")
	}
	if run.Status != StatusOK && run.Status != StatusFailed {
		return "", fmt.Errorf("invalid status %q", run.Status)
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	counts := run.SlideElements
	if counts == nil {
		counts = []int{}
	}
	slideElements, err := json.Marshal(counts)
	if err != nil {
		return "", fmt.Errorf("failed to serialize slide elements: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO build_runs
			(id, output, slides, elements, tables, slide_elements, bytes, status, error, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Output, run.Slides, run.Elements, run.Tables, string(slideElements), run.Bytes,
		run.Status, run.Error, run.StartedAt.UnixMilli(), run.Duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to insert build run: %w", err)
	}
	return run.ID, nil
}

// List returns the most recent runs first. limit <= 0 returns all runs.
func (s *HistoryService) List(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT id, output, slides, elements, tables, slide_elements, bytes, status, error, started_at, duration_ms
		FROM build_runs
		ORDER BY started_at DESC, rowid DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query build runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r             Run
			slideElements string
			startedAt     int64
			durationMs    int64
		)
		if err := rows.Scan(&r.ID, &r.Output, &r.Slides, &r.Elements, &r.Tables, &slideElements,
			&r.Bytes, &r.Status, &r.Error, &startedAt, &durationMs); err != nil {
			return nil, fmt.Errorf("failed to scan build run: %w", err)
		}
		if err := json.Unmarshal([]byte(slideElements), &r.SlideElements); err != nil {
			return nil, fmt.Errorf("failed to parse slide elements of run %s: %w", r.ID, err)
		}
		r.StartedAt = time.UnixMilli(startedAt)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate build runs: %w", err)
	}
	return runs, nil
}
