package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/user-replica/model"
)

// Replica is the local store of replicated users, only the reconciler mutates
// replicated fields, read paths may add placeholders
type Replica interface {
	GetReplica(ctx context.Context, id int64) (model.NullUserReplica, error)
	LockReplica(ctx context.Context, id int64) (model.NullUserReplica, error)
	InsertReplica(ctx context.Context, replica model.UserReplica) error
	UpdateReplica(ctx context.Context, replica model.UserReplica) error
	InsertPlaceholder(ctx context.Context, replica model.UserReplica) (bool, error)
}

type replicaImpl struct {
}

// NewReplica ...
func NewReplica() Replica {
	return &replicaImpl{}
}

const selectReplicaColumns = `
SELECT id, username, email, full_name, bio, avatar_url,
	role, is_active, is_verified, synced_at, sync_version
FROM user_replica
WHERE id = ?`

func nullReplica(r model.UserReplica, err error) (model.NullUserReplica, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullUserReplica{}, nil
	}
	if err != nil {
		return model.NullUserReplica{}, err
	}
	return model.NullUserReplica{Valid: true, Replica: r}, nil
}

// GetReplica ...
func (*replicaImpl) GetReplica(ctx context.Context, id int64) (model.NullUserReplica, error) {
	var r model.UserReplica
	err := GetReadonly(ctx).GetContext(ctx, &r, selectReplicaColumns, id)
	return nullReplica(r, err)
}

// LockReplica reads the row with an exclusive lock, must be called inside Transact
func (*replicaImpl) LockReplica(ctx context.Context, id int64) (model.NullUserReplica, error) {
	var r model.UserReplica
	err := GetTx(ctx).GetContext(ctx, &r, selectReplicaColumns+` FOR UPDATE`, id)
	return nullReplica(r, err)
}

const insertReplicaQuery = `
INSERT INTO user_replica (
	id, username, email, full_name, bio, avatar_url,
	role, is_active, is_verified, synced_at, sync_version
) VALUES (
	:id, :username, :email, :full_name, :bio, :avatar_url,
	:role, :is_active, :is_verified, :synced_at, :sync_version
)`

// InsertReplica ...
func (*replicaImpl) InsertReplica(ctx context.Context, replica model.UserReplica) error {
	_, err := GetTx(ctx).NamedExecContext(ctx, insertReplicaQuery, replica)
	return err
}

// UpdateReplica overwrites every column of an existing row
func (*replicaImpl) UpdateReplica(ctx context.Context, replica model.UserReplica) error {
	query := `
UPDATE user_replica SET
	username = :username,
	email = :email,
	full_name = :full_name,
	bio = :bio,
	avatar_url = :avatar_url,
	role = :role,
	is_active = :is_active,
	is_verified = :is_verified,
	synced_at = :synced_at,
	sync_version = :sync_version
WHERE id = :id`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, replica)
	return err
}

// InsertPlaceholder never overwrites an existing row, returns whether a row was inserted
func (*replicaImpl) InsertPlaceholder(ctx context.Context, replica model.UserReplica) (bool, error) {
	query := `
INSERT IGNORE INTO user_replica (
	id, username, email, full_name, bio, avatar_url,
	role, is_active, is_verified, synced_at, sync_version
) VALUES (
	:id, :username, :email, :full_name, :bio, :avatar_url,
	:role, :is_active, :is_verified, :synced_at, :sync_version
)`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, replica)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
