package store

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/PaynestHQ/paynest-mobile/models"
)

// PostgresStore persists users in postgres. Schema lives in config.RunMigrations.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (p *PostgresStore) CreateUser(ctx context.Context, user models.User) error {
	_, err := p.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, phone_number, full_name, password_hash,
		                   code_secret, code_counter, email_verified, phone_verified,
		                   created_at, updated_at)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, user.ID, user.Email, user.PhoneNumber, user.FullName, user.PasswordHash,
		user.CodeSecret, user.CodeCounter, user.EmailVerified, user.PhoneVerified,
		user.CreatedAt, user.UpdatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

func (p *PostgresStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return p.scanUser(p.DB.QueryRowContext(ctx, `
		SELECT id, email, phone_number, full_name, password_hash,
		       code_secret, code_counter, email_verified, phone_verified,
		       created_at, updated_at
		FROM users WHERE id = $1
	`, id))
}

func (p *PostgresStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return p.scanUser(p.DB.QueryRowContext(ctx, `
		SELECT id, email, phone_number, full_name, password_hash,
		       code_secret, code_counter, email_verified, phone_verified,
		       created_at, updated_at
		FROM users WHERE email = LOWER($1)
	`, email))
}

func (p *PostgresStore) SetVerified(ctx context.Context, id, channel string) error {
	column := "email_verified"
	if channel == "phone" {
		column = "phone_verified"
	}

	result, err := p.DB.ExecContext(ctx, `
		UPDATE users SET `+column+` = TRUE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) AdvanceCodeCounter(ctx context.Context, id string) (uint64, error) {
	var counter uint64
	err := p.DB.QueryRowContext(ctx, `
		UPDATE users SET code_counter = code_counter + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING code_counter
	`, id).Scan(&counter)

	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return counter, err
}

func (p *PostgresStore) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PhoneNumber,
		&user.FullName,
		&user.PasswordHash,
		&user.CodeSecret,
		&user.CodeCounter,
		&user.EmailVerified,
		&user.PhoneVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	return user, err
}
