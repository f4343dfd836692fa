package sessioninfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/pkg/kernel"
)

type PostgresSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresSessionRepository(db *sqlx.DB) session.Repository {
	return &PostgresSessionRepository{db: db}
}

// GetByID retrieves a session by its key
func (r *PostgresSessionRepository) GetByID(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	query := `
		SELECT
			session_id, name, interests, strengths, subjects,
			resume_keywords, recommended_career, report_path,
			interview_mode, created_at, updated_at
		FROM sessions
		WHERE session_id = $1
	`

	var s session.Session
	var name, interests, strengths, subjects sql.NullString
	var resumeKeywords, recommendedCareer, reportPath sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&name,
		&interests,
		&strengths,
		&subjects,
		&resumeKeywords,
		&recommendedCareer,
		&reportPath,
		&s.InterviewMode,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, session.ErrSessionNotFound().WithDetail("session_id", id)
	}
	if err != nil {
		return nil, err
	}

	s.Name = name.String
	s.Interests = interests.String
	s.Strengths = strengths.String
	s.Subjects = subjects.String
	s.ResumeKeywords = resumeKeywords.String
	s.RecommendedCareer = kernel.DomainLabel(recommendedCareer.String)
	s.ReportPath = kernel.ReportPath(reportPath.String)

	return &s, nil
}

// Upsert writes the full session row, write-through after each action
func (r *PostgresSessionRepository) Upsert(ctx context.Context, s *session.Session) error {
	query := `
		INSERT INTO sessions (
			session_id, name, interests, strengths, subjects,
			resume_keywords, recommended_career, report_path,
			interview_mode, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (session_id) DO UPDATE
		SET
			name = EXCLUDED.name,
			interests = EXCLUDED.interests,
			strengths = EXCLUDED.strengths,
			subjects = EXCLUDED.subjects,
			resume_keywords = EXCLUDED.resume_keywords,
			recommended_career = EXCLUDED.recommended_career,
			report_path = EXCLUDED.report_path,
			interview_mode = EXCLUDED.interview_mode,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		s.ID,
		s.Name,
		s.Interests,
		s.Strengths,
		s.Subjects,
		s.ResumeKeywords,
		s.RecommendedCareer,
		s.ReportPath,
		s.InterviewMode,
		s.CreatedAt,
		s.UpdatedAt,
	)

	return err
}

// Delete removes a session row
func (r *PostgresSessionRepository) Delete(ctx context.Context, id kernel.SessionID) error {
	query := `DELETE FROM sessions WHERE session_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return session.ErrSessionNotFound().WithDetail("session_id", id)
	}

	return nil
}
