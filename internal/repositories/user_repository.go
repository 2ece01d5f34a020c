package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"authgate/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)

	// reset-token helpers
	SetResetToken(userID int, fingerprint string, expiresAt time.Time) error
	ClearResetToken(userID int) error
	GetByResetFingerprint(fingerprint string, now time.Time) (*models.User, error)
	ConsumeResetToken(userID int, passwordHash string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	if err := r.DB.QueryRow(q, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("user create: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash,
			reset_token_fingerprint, reset_token_expires_at,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash,
			reset_token_fingerprint, reset_token_expires_at,
			created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRow(q, email))
}

// SetResetToken opens (or overwrites) the reset window for a user;
// any previous unused token stops matching from this point on.
func (r *userRepository) SetResetToken(userID int, fingerprint string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET reset_token_fingerprint=$1, reset_token_expires_at=$2, updated_at=NOW()
		WHERE id=$3
	`
	if _, err := r.DB.Exec(q, fingerprint, expiresAt, userID); err != nil {
		return fmt.Errorf("user set reset token: %w", err)
	}
	return nil
}

func (r *userRepository) ClearResetToken(userID int) error {
	const q = `
		UPDATE users
		SET reset_token_fingerprint=NULL, reset_token_expires_at=NULL, updated_at=NOW()
		WHERE id=$1
	`
	if _, err := r.DB.Exec(q, userID); err != nil {
		return fmt.Errorf("user clear reset token: %w", err)
	}
	return nil
}

// GetByResetFingerprint only matches tokens whose expiry is strictly
// in the future; expired rows behave exactly like absent ones.
func (r *userRepository) GetByResetFingerprint(fingerprint string, now time.Time) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash,
			reset_token_fingerprint, reset_token_expires_at,
			created_at, updated_at
		FROM users
		WHERE reset_token_fingerprint = $1 AND reset_token_expires_at > $2
	`
	return r.scanOne(r.DB.QueryRow(q, fingerprint, now))
}

// ConsumeResetToken installs the new password hash and closes the
// reset window in a single UPDATE.
func (r *userRepository) ConsumeResetToken(userID int, passwordHash string) error {
	const q = `
		UPDATE users
		SET password_hash=$1, reset_token_fingerprint=NULL, reset_token_expires_at=NULL, updated_at=NOW()
		WHERE id=$2
	`
	if _, err := r.DB.Exec(q, passwordHash, userID); err != nil {
		return fmt.Errorf("user consume reset token: %w", err)
	}
	return nil
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		fp  sql.NullString
		exp sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&fp, &exp,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fp.Valid {
		s := fp.String
		u.ResetTokenFingerprint = &s
	}
	if exp.Valid {
		t := exp.Time
		u.ResetTokenExpiresAt = &t
	}
	return u, nil
}
