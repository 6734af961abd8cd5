package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"

	"github.com/lib/pq"
)

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

const joinRequestColumns = `id, chapter_id, user_id, interests, participation_role, status, decided_by, created_on`

func scanJoinRequest(row interface{ Scan(...any) error }) (*domain.ChapterJoinRequest, error) {
	req := &domain.ChapterJoinRequest{}
	var createdOn time.Time
	err := row.Scan(&req.ID, &req.ChapterID, &req.UserID, pq.Array(&req.Interests),
		&req.ParticipationRole, &req.Status, &req.DecidedBy, &createdOn)
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	return req, nil
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.ChapterJoinRequest) error {
	query := `INSERT INTO join_requests (id, chapter_id, user_id, interests, participation_role, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, req.ID, req.ChapterID, req.UserID,
		pq.Array(req.Interests), req.ParticipationRole, req.Status, now)
	if err != nil {
		return err
	}
	req.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id string) (*domain.ChapterJoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests WHERE id = $1`
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("join request %s: %w", id, domain.ErrNotFound)
	}
	return req, err
}

func (r *joinRequestRepository) ListByChapter(ctx context.Context, chapterID string, status domain.JoinRequestStatus) ([]domain.ChapterJoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests
	          WHERE chapter_id = $1 AND ($2 = '' OR status = $2) ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, chapterID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ChapterJoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *joinRequestRepository) Decide(ctx context.Context, requestID string, status domain.JoinRequestStatus, decidedBy string) (*domain.ChapterJoinRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := scanJoinRequest(tx.QueryRowContext(ctx,
		`SELECT `+joinRequestColumns+` FROM join_requests WHERE id = $1 FOR UPDATE`, requestID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("join request %s: %w", requestID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if req.Status != domain.JoinRequestStatusPending {
		return nil, fmt.Errorf("join request %s is %s, not pending: %w", requestID, req.Status, domain.ErrInvalidState)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE join_requests SET status = $1, decided_by = $2 WHERE id = $3`,
		status, decidedBy, requestID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	req.Status = status
	req.DecidedBy = &decidedBy
	return req, nil
}
