package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
	"scef-chapters-backend/internal/repository/postgres"
)

const chapterCols = "id, slug, name, country, state, city, tier, status, member_count, program_focus, kickoff_plan, verified, address, created_by, created_on"

func chapterRow(id, slug string, status domain.ChapterStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "slug", "name", "country", "state", "city", "tier", "status",
		"member_count", "program_focus", "kickoff_plan", "verified", "address", "created_by", "created_on",
	}).AddRow(id, slug, "Lagos Mainland", "Nigeria", "Lagos", "Lagos",
		string(domain.ChapterTierOnline), string(status),
		int32(1), []byte("{EduAid}"), "Monthly meetups", false, nil, "u_1", time.Now().UTC())
}

func TestChapterCreate_SlugConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	mock.ExpectExec("INSERT INTO chapters").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "chapters_slug_key"})

	err = repo.Create(context.Background(), &domain.Chapter{
		ID:     "ch_1",
		Slug:   "lagos-mainland",
		Status: domain.ChapterStatusPending,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterGetByIDOrSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	mock.ExpectQuery("SELECT " + chapterCols + " FROM chapters WHERE id = ").
		WithArgs("lagos-mainland").
		WillReturnRows(chapterRow("ch_1", "lagos-mainland", domain.ChapterStatusActive))

	ch, err := repo.GetByIDOrSlug(context.Background(), "lagos-mainland")
	assert.NoError(t, err)
	assert.Equal(t, "ch_1", ch.ID)
	assert.Equal(t, []string{"EduAid"}, ch.ProgramFocus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	mock.ExpectQuery("SELECT " + chapterCols + " FROM chapters WHERE id = ").
		WithArgs("ch_missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "ch_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChapterList_Paging(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(string(domain.ChapterTierOnline), "lagos").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int32(12)))
	mock.ExpectQuery("SELECT " + chapterCols + " FROM chapters").
		WithArgs(string(domain.ChapterTierOnline), "lagos", int32(5), int32(5)).
		WillReturnRows(chapterRow("ch_1", "lagos-mainland", domain.ChapterStatusActive))

	chapters, total, err := repo.List(context.Background(), repository.ChapterFilter{
		Tier:     domain.ChapterTierOnline,
		Search:   "lagos",
		Page:     2,
		PageSize: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(12), total)
	assert.Len(t, chapters, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterDecideCreation_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	actor := "admin_1"
	entry := &domain.AuditLogEntry{
		ID:         "log_1",
		Action:     domain.AuditActionApprove,
		EntityType: domain.AuditEntityChapter,
		EntityID:   "ch_1",
		UserID:     &actor,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM chapters WHERE id = (.+) FOR UPDATE").
		WithArgs("ch_1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(domain.ChapterStatusPending)))
	mock.ExpectExec("UPDATE chapters SET status = ").
		WithArgs(string(domain.ChapterStatusActive), "ch_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("log_1", string(domain.AuditActionApprove), string(domain.AuditEntityChapter), "ch_1", &actor, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT " + chapterCols + " FROM chapters WHERE id = ").
		WithArgs("ch_1").
		WillReturnRows(chapterRow("ch_1", "lagos-mainland", domain.ChapterStatusActive))
	mock.ExpectCommit()

	ch, err := repo.DecideCreation(context.Background(), "ch_1", domain.ChapterStatusActive, entry)
	assert.NoError(t, err)
	assert.Equal(t, domain.ChapterStatusActive, ch.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterDecideCreation_NotPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM chapters WHERE id = (.+) FOR UPDATE").
		WithArgs("ch_1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(domain.ChapterStatusActive)))
	mock.ExpectRollback()

	_, err = repo.DecideCreation(context.Background(), "ch_1", domain.ChapterStatusActive, &domain.AuditLogEntry{ID: "log_1"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterDecideCreation_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := postgres.NewChapterRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM chapters WHERE id = (.+) FOR UPDATE").
		WithArgs("ch_missing").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err = repo.DecideCreation(context.Background(), "ch_missing", domain.ChapterStatusRejected, &domain.AuditLogEntry{ID: "log_1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
