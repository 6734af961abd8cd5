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

type chapterRepository struct {
	db *sql.DB
}

func NewChapterRepository(db *sql.DB) repository.ChapterRepository {
	return &chapterRepository{db: db}
}

const chapterColumns = `id, slug, name, country, state, city, tier, status, member_count, program_focus, kickoff_plan, verified, address, created_by, created_on`

func scanChapter(row interface{ Scan(...any) error }) (*domain.Chapter, error) {
	ch := &domain.Chapter{}
	var createdOn time.Time
	err := row.Scan(&ch.ID, &ch.Slug, &ch.Name, &ch.Country, &ch.State, &ch.City,
		&ch.Tier, &ch.Status, &ch.MemberCount, pq.Array(&ch.ProgramFocus),
		&ch.KickoffPlan, &ch.Verified, &ch.Address, &ch.CreatedBy, &createdOn)
	if err != nil {
		return nil, err
	}
	ch.CreatedOn = createdOn.Format(time.RFC3339)
	return ch, nil
}

func (r *chapterRepository) Create(ctx context.Context, ch *domain.Chapter) error {
	query := `INSERT INTO chapters (id, slug, name, country, state, city, tier, status, member_count, program_focus, kickoff_plan, verified, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, ch.ID, ch.Slug, ch.Name, ch.Country, ch.State, ch.City,
		ch.Tier, ch.Status, ch.MemberCount, pq.Array(ch.ProgramFocus), ch.KickoffPlan, ch.Verified, ch.CreatedBy, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("chapter slug %q already taken: %w", ch.Slug, domain.ErrConflict)
		}
		return err
	}
	ch.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *chapterRepository) GetByID(ctx context.Context, id string) (*domain.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1`
	ch, err := scanChapter(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
	}
	return ch, err
}

func (r *chapterRepository) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1 OR slug = $1`
	ch, err := scanChapter(r.db.QueryRowContext(ctx, query, idOrSlug))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("chapter %s: %w", idOrSlug, domain.ErrNotFound)
	}
	return ch, err
}

func (r *chapterRepository) List(ctx context.Context, filter repository.ChapterFilter) ([]domain.Chapter, int32, error) {
	where := `WHERE ($1 = '' OR tier = $1)
	          AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR city ILIKE '%' || $2 || '%' OR country ILIKE '%' || $2 || '%')`

	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chapters `+where, string(filter.Tier), filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	query := `SELECT ` + chapterColumns + ` FROM chapters ` + where + ` ORDER BY created_on LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, string(filter.Tier), filter.Search, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var chapters []domain.Chapter
	for rows.Next() {
		ch, err := scanChapter(rows)
		if err != nil {
			return nil, 0, err
		}
		chapters = append(chapters, *ch)
	}
	return chapters, total, rows.Err()
}

func (r *chapterRepository) ListPending(ctx context.Context) ([]domain.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE status = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, domain.ChapterStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []domain.Chapter
	for rows.Next() {
		ch, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, *ch)
	}
	return chapters, rows.Err()
}

func (r *chapterRepository) DecideCreation(ctx context.Context, chapterID string, status domain.ChapterStatus, entry *domain.AuditLogEntry) (*domain.Chapter, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current domain.ChapterStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM chapters WHERE id = $1 FOR UPDATE`, chapterID).Scan(&current)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("chapter %s: %w", chapterID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if current != domain.ChapterStatusPending {
		return nil, fmt.Errorf("chapter %s is %s, not pending: %w", chapterID, current, domain.ErrInvalidState)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE chapters SET status = $1 WHERE id = $2`, status, chapterID); err != nil {
		return nil, err
	}
	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	ch, err := scanChapter(tx.QueryRowContext(ctx, `SELECT `+chapterColumns+` FROM chapters WHERE id = $1`, chapterID))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ch, nil
}
