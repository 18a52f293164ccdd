package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibe-gaming/profile-service/internal/db"
	"github.com/vibe-gaming/profile-service/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userProfileColumns = `id, company_name, email, password, first_name, last_name, mobile_number, dob, hashtag`

type userProfileRepository struct {
	db *sqlx.DB
}

func newUserProfileRepository(db *sqlx.DB) *userProfileRepository {
	return &userProfileRepository{
		db: db,
	}
}

func (r *userProfileRepository) GetByID(ctx context.Context, id int64) (*domain.UserProfile, error) {
	const query = `SELECT ` + userProfileColumns + ` FROM users WHERE id = ?;`

	var profile domain.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from users by id failed: %w", err)
	}

	return &profile, nil
}

func (r *userProfileRepository) GetByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.UserProfile, error) {
	// same expression as the unique_key column behind uix_user, so both agree on
	// equality (byte-wise, NULL matches NULL) and the lookup uses the index
	const query = `
	SELECT ` + userProfileColumns + ` FROM users
	WHERE unique_key = SHA2(JSON_ARRAY(?, ?, ?, ?, ?, ?), 256)
	LIMIT 1;
	`

	var profile domain.UserProfile
	err := r.db.GetContext(ctx, &profile, query,
		key.CompanyName,
		key.Email,
		key.FirstName,
		key.LastName,
		key.MobileNumber,
		key.DateOfBirth,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from users by unique key failed: %w", err)
	}

	return &profile, nil
}

func (r *userProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	const query = `
	INSERT INTO users
	(company_name, email, password, first_name, last_name, mobile_number, dob, hashtag)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		profile.CompanyName,
		profile.Email,
		profile.Password,
		profile.FirstName,
		profile.LastName,
		profile.MobileNumber,
		profile.DateOfBirth,
		profile.Hashtag,
	)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id failed: %w", err)
	}
	profile.ID = id

	return nil
}

func (r *userProfileRepository) Replace(ctx context.Context, profile *domain.UserProfile) error {
	const query = `
	UPDATE users SET
	company_name = ?, email = ?, password = ?, first_name = ?, last_name = ?, mobile_number = ?, dob = ?, hashtag = ?
	WHERE id = ?;
	`

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := lockByID(ctx, tx, profile.ID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query,
			profile.CompanyName,
			profile.Email,
			profile.Password,
			profile.FirstName,
			profile.LastName,
			profile.MobileNumber,
			profile.DateOfBirth,
			profile.Hashtag,
			profile.ID,
		)
		if err != nil {
			if db.IsDuplicateEntry(err) {
				return domain.ErrDuplicateEntry
			}
			return fmt.Errorf("update user by id failed: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected failed: %w", err)
		}
		if rowsAffected == 0 {
			return domain.ErrNoRowsAffected
		}

		return nil
	})
}

func (r *userProfileRepository) Delete(ctx context.Context, id int64) (*domain.UserProfile, error) {
	const query = `DELETE FROM users WHERE id = ?;`

	var snapshot *domain.UserProfile
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		profile, err := lockByID(ctx, tx, id)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return fmt.Errorf("delete user by id failed: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected failed: %w", err)
		}
		if rowsAffected == 0 {
			return domain.ErrNoRowsAffected
		}

		snapshot = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *userProfileRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// withTx runs fn in a transaction. The transaction is rolled back on every
// path that does not reach a successful commit.
func (r *userProfileRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}
	//nolint:errcheck
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("commit tx failed: %w", err)
	}

	return nil
}

func lockByID(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.UserProfile, error) {
	const query = `SELECT ` + userProfileColumns + ` FROM users WHERE id = ? FOR UPDATE;`

	var profile domain.UserProfile
	if err := tx.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock user by id failed: %w", err)
	}

	return &profile, nil
}
