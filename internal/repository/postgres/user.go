package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, role, country, state, city, password_hash, created_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role,
		&u.Country, &u.State, &u.City, &u.PasswordHash, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, first_name, last_name, email, role, country, state, city, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, user.ID, user.FirstName, user.LastName, user.Email,
		user.Role, user.Country, user.State, user.City, user.PasswordHash, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, domain.ErrConflict)
		}
		return err
	}
	user.CreatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return u, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return u, err
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1`, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
