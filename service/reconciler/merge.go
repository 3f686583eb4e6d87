package reconciler

import (
	"database/sql"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
)

// Action is what applying an envelope did to the replica store
type Action string

const (
	// ActionInsert a new row
	ActionInsert Action = "insert"

	// ActionUpdate an existing row
	ActionUpdate Action = "update"

	// ActionSoftDelete marks the row inactive
	ActionSoftDelete Action = "soft_delete"

	// ActionNoop nothing to change
	ActionNoop Action = "noop"

	// ActionSkip the envelope is older than the stored row
	ActionSkip Action = "skip"
)

// Decision is the row to write for an envelope
type Decision struct {
	Action  Action
	Replica model.UserReplica
}

// Decide computes the next state of one replica row, it does not touch the store
func Decide(
	existing model.NullUserReplica, env model.Envelope,
	now time.Time, policy config.StaleVersionPolicy,
) Decision {
	switch env.EventType {
	case model.EventTypeCreated, model.EventTypeUpdated, model.EventTypeRoleChanged,
		model.EventTypeActivated, model.EventTypeDeactivated, model.EventTypeDeleted:
	default:
		return Decision{Action: ActionNoop}
	}

	if existing.Valid && isStale(existing.Replica, env, policy) {
		return Decision{Action: ActionSkip, Replica: existing.Replica}
	}

	if env.EventType == model.EventTypeDeleted {
		if !existing.Valid {
			return Decision{Action: ActionNoop}
		}
		r := existing.Replica
		r.IsActive = false
		r.SyncedAt = now
		r.SyncVersion = nextSyncVersion(r, env)
		return Decision{Action: ActionSoftDelete, Replica: r}
	}

	if !existing.Valid {
		r := newReplica(env, now)
		forceActive(&r, env.EventType)
		return Decision{Action: ActionInsert, Replica: r}
	}

	r := mergeReplica(existing.Replica, env)
	forceActive(&r, env.EventType)
	r.SyncedAt = now
	r.SyncVersion = nextSyncVersion(existing.Replica, env)
	return Decision{Action: ActionUpdate, Replica: r}
}

func isStale(r model.UserReplica, env model.Envelope, policy config.StaleVersionPolicy) bool {
	if policy != config.StaleVersionSkip {
		return false
	}
	if env.Version == nil {
		return false
	}
	return *env.Version < r.SyncVersion
}

// nextSyncVersion keeps the stored version when the envelope has none,
// a placeholder row becomes a replicated row
func nextSyncVersion(r model.UserReplica, env model.Envelope) int64 {
	if env.Version != nil {
		return *env.Version
	}
	if r.IsPlaceholder() {
		return model.DefaultSyncVersion
	}
	return r.SyncVersion
}

func forceActive(r *model.UserReplica, eventType model.EventType) {
	switch eventType {
	case model.EventTypeActivated:
		r.IsActive = true
	case model.EventTypeDeactivated:
		r.IsActive = false
	default:
	}
}

func newReplica(env model.Envelope, now time.Time) model.UserReplica {
	username := model.DefaultUsername(env.EntityID)
	if env.Username != nil && *env.Username != "" {
		username = *env.Username
	}

	r := model.UserReplica{
		ID:          env.EntityID,
		Username:    username,
		Email:       model.DefaultEmail(username),
		Role:        model.DefaultReplicaRole,
		IsActive:    true,
		SyncedAt:    now,
		SyncVersion: env.EffectiveVersion(),
	}
	return mergeReplica(r, env)
}

func toNullString(s *string, old sql.NullString) sql.NullString {
	if s == nil {
		return old
	}
	if *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: *s}
}

func overwrite(s *string, old string) string {
	if s == nil || *s == "" {
		return old
	}
	return *s
}

// mergeReplica overwrites only the fields present in the envelope
func mergeReplica(r model.UserReplica, env model.Envelope) model.UserReplica {
	r.Username = overwrite(env.Username, r.Username)
	r.Email = overwrite(env.Email, r.Email)
	r.Role = overwrite(env.Role, r.Role)

	r.FullName = toNullString(env.FullName, r.FullName)
	r.Bio = toNullString(env.Bio, r.Bio)
	r.AvatarURL = toNullString(env.AvatarURL, r.AvatarURL)

	if env.IsEnabled != nil {
		r.IsActive = *env.IsEnabled
	}
	if env.IsVerified != nil {
		r.IsVerified = *env.IsVerified
	}
	return r
}
