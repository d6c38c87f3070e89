// Package history manages the Postgres index of stored analyses.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when no analysis row matches.
var ErrNotFound = errors.New("analysis not found")

// Record is one stored analysis. The full report and the resume text live
// in blob storage under ReportRef and ResumeRef.
type Record struct {
	ID           string     `json:"id"`
	Role         string     `json:"role"`
	RoleMode     string     `json:"role_mode"`
	OverallScore int        `json:"overall_score"`
	Rating       string     `json:"rating"`
	Confidence   string     `json:"confidence"`
	WordCount    int        `json:"word_count"`
	ReportRef    string     `json:"report_ref"`
	ResumeRef    string     `json:"resume_ref"`
	CreatedAt    time.Time  `json:"created_at"`
	RescoredAt   *time.Time `json:"rescored_at,omitempty"`
}

// Filter narrows List. A zero Limit means no limit.
type Filter struct {
	Role  string
	Limit int
}

// ScoreUpdate carries the fields rewritten by a re-score.
type ScoreUpdate struct {
	OverallScore int
	Rating       string
	Confidence   string
}

// Service provides analysis index operations.
type Service struct {
	db *sql.DB
}

// NewService creates a new history service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

const recordColumns = `id, role, role_mode, overall_score, rating, confidence,
		        word_count, report_ref, resume_ref, created_at, rescored_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	r := &Record{}
	err := row.Scan(
		&r.ID, &r.Role, &r.RoleMode, &r.OverallScore, &r.Rating, &r.Confidence,
		&r.WordCount, &r.ReportRef, &r.ResumeRef, &r.CreatedAt, &r.RescoredAt,
	)
	return r, err
}

// Insert stores a new analysis row and returns it with its creation time.
func (s *Service) Insert(ctx context.Context, rec Record) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO analyses (id, role, role_mode, overall_score, rating, confidence,
		                       word_count, report_ref, resume_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+recordColumns,
		rec.ID, rec.Role, rec.RoleMode, rec.OverallScore, rec.Rating, rec.Confidence,
		rec.WordCount, rec.ReportRef, rec.ResumeRef,
	)
	r, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("insert analysis: %w", err)
	}
	return r, nil
}

// Get returns a single analysis by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM analyses WHERE id = $1`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get analysis %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis %s: %w", id, err)
	}
	return r, nil
}

// List returns analyses matching f, newest first.
func (s *Service) List(ctx context.Context, f Filter) ([]Record, error) {
	query, args := listQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

func listQuery(f Filter) (string, []any) {
	var sb strings.Builder
	var args []any
	sb.WriteString(`SELECT ` + recordColumns + ` FROM analyses`)
	if f.Role != "" {
		args = append(args, f.Role)
		sb.WriteString(` WHERE role = $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY created_at DESC, id`)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}

// UpdateScore rewrites the score columns of an analysis after a re-score.
func (s *Service) UpdateScore(ctx context.Context, id string, u ScoreUpdate) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE analyses
		 SET overall_score = $1, rating = $2, confidence = $3, rescored_at = now()
		 WHERE id = $4`,
		u.OverallScore, u.Rating, u.Confidence, id,
	)
	if err != nil {
		return fmt.Errorf("update analysis %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update analysis %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update analysis %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes an analysis row.
func (s *Service) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete analysis %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete analysis %s: %w", id, ErrNotFound)
	}
	return nil
}
