package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/user-replica/model"
)

// User is the owner side store of users
type User interface {
	GetUser(ctx context.Context, id int64) (model.NullUser, error)
	LockUser(ctx context.Context, id int64) (model.NullUser, error)
	InsertUser(ctx context.Context, user model.User) (int64, error)
	UpdateUser(ctx context.Context, user model.User) error
}

type userImpl struct {
}

// NewUser ...
func NewUser() User {
	return &userImpl{}
}

const selectUserColumns = `
SELECT id, username, email, password_hash, full_name, bio, avatar_url,
	role, is_enabled, is_verified, version, deleted_at, created_at, updated_at
FROM users
WHERE id = ?`

func nullUser(u model.User, err error) (model.NullUser, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullUser{}, nil
	}
	if err != nil {
		return model.NullUser{}, err
	}
	return model.NullUser{Valid: true, User: u}, nil
}

// GetUser ...
func (*userImpl) GetUser(ctx context.Context, id int64) (model.NullUser, error) {
	var u model.User
	err := GetReadonly(ctx).GetContext(ctx, &u, selectUserColumns, id)
	return nullUser(u, err)
}

// LockUser ...
func (*userImpl) LockUser(ctx context.Context, id int64) (model.NullUser, error) {
	var u model.User
	err := GetTx(ctx).GetContext(ctx, &u, selectUserColumns+` FOR UPDATE`, id)
	return nullUser(u, err)
}

// InsertUser returns the generated id
func (*userImpl) InsertUser(ctx context.Context, user model.User) (int64, error) {
	query := `
INSERT INTO users (
	username, email, password_hash, full_name, bio, avatar_url,
	role, is_enabled, is_verified, version
) VALUES (
	:username, :email, :password_hash, :full_name, :bio, :avatar_url,
	:role, :is_enabled, :is_verified, :version
)`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, user)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateUser ...
func (*userImpl) UpdateUser(ctx context.Context, user model.User) error {
	query := `
UPDATE users SET
	email = :email,
	password_hash = :password_hash,
	full_name = :full_name,
	bio = :bio,
	avatar_url = :avatar_url,
	role = :role,
	is_enabled = :is_enabled,
	is_verified = :is_verified,
	version = :version,
	deleted_at = :deleted_at
WHERE id = :id`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, user)
	return err
}
