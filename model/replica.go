package model

import (
	"database/sql"
	"fmt"
	"time"
)

// UserReplica is the local copy of a user kept by a consuming service
type UserReplica struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`

	FullName  sql.NullString `db:"full_name" json:"fullName"`
	Bio       sql.NullString `db:"bio" json:"bio"`
	AvatarURL sql.NullString `db:"avatar_url" json:"avatarUrl"`

	Role       string `db:"role" json:"role"`
	IsActive   bool   `db:"is_active" json:"isActive"`
	IsVerified bool   `db:"is_verified" json:"isVerified"`

	SyncedAt    time.Time `db:"synced_at" json:"syncedAt"`
	SyncVersion int64     `db:"sync_version" json:"syncVersion"`
}

// NullUserReplica ...
type NullUserReplica struct {
	Valid   bool
	Replica UserReplica
}

// PlaceholderSyncVersion marks a row created by a read path before any event arrived
const PlaceholderSyncVersion int64 = 0

// DefaultReplicaRole ...
const DefaultReplicaRole = string(RoleStudent)

// IsPlaceholder ...
func (r UserReplica) IsPlaceholder() bool {
	return r.SyncVersion == PlaceholderSyncVersion
}

// DefaultUsername for a replica whose events never carried one
func DefaultUsername(id int64) string {
	return fmt.Sprintf("user_%d", id)
}

// DefaultEmail for a replica created from an event without email
func DefaultEmail(username string) string {
	return username + "@placeholder.local"
}

// NewPlaceholderReplica builds the minimal row used by read paths
func NewPlaceholderReplica(id int64, now time.Time) UserReplica {
	return UserReplica{
		ID:          id,
		Username:    DefaultUsername(id),
		Email:       fmt.Sprintf("user%d@example.com", id),
		FullName:    sql.NullString{Valid: true, String: fmt.Sprintf("User %d", id)},
		Role:        DefaultReplicaRole,
		IsActive:    true,
		SyncedAt:    now,
		SyncVersion: PlaceholderSyncVersion,
	}
}
