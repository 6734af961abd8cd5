package postgres

import (
	"context"
	"database/sql"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, act *domain.ChapterActivity) error {
	query := `INSERT INTO activities (id, chapter_id, title, description, activity_date, category, proof_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, act.ID, act.ChapterID, act.Title, act.Description,
		act.Date, act.Category, act.ProofURL, now)
	if err != nil {
		return err
	}
	act.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *activityRepository) ListByChapter(ctx context.Context, chapterID string) ([]domain.ChapterActivity, error) {
	query := `SELECT id, chapter_id, title, description, activity_date, category, proof_url, created_on
	          FROM activities WHERE chapter_id = $1 ORDER BY activity_date DESC, created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var acts []domain.ChapterActivity
	for rows.Next() {
		var a domain.ChapterActivity
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.ChapterID, &a.Title, &a.Description, &a.Date, &a.Category, &a.ProofURL, &createdOn); err != nil {
			return nil, err
		}
		a.CreatedOn = createdOn.Format(time.RFC3339)
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

func (r *activityRepository) CountByChapter(ctx context.Context, chapterID string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities WHERE chapter_id = $1`, chapterID).Scan(&count)
	return count, err
}
