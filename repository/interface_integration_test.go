package repository

import (
	"context"
	"testing"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/integration"
	"github.com/stretchr/testify/assert"
)

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase(t)

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase(t)

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT VERSION()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestReplica_Integration__Insert_Update_Lock(t *testing.T) {
	tc := integration.NewTestCase(t)
	tc.Truncate("user_replica")

	p := NewProvider(tc.DB)
	repo := NewReplica()

	syncedAt := newTime("2022-05-10T10:00:00Z")

	err := p.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertReplica(ctx, model.UserReplica{
			ID:          42,
			Username:    "alice",
			Email:       "alice@example.com",
			Role:        "STUDENT",
			IsActive:    true,
			SyncedAt:    syncedAt,
			SyncVersion: 1,
		})
	})
	assert.Equal(t, nil, err)

	err = p.Transact(newContext(), func(ctx context.Context) error {
		r, err := repo.LockReplica(ctx, 42)
		if err != nil {
			return err
		}
		assert.Equal(t, true, r.Valid)

		r.Replica.IsActive = false
		r.Replica.SyncVersion = 2
		return repo.UpdateReplica(ctx, r.Replica)
	})
	assert.Equal(t, nil, err)

	r, err := repo.GetReplica(p.Readonly(newContext()), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullUserReplica{
		Valid: true,
		Replica: model.UserReplica{
			ID:          42,
			Username:    "alice",
			Email:       "alice@example.com",
			Role:        "STUDENT",
			IsActive:    false,
			SyncedAt:    syncedAt,
			SyncVersion: 2,
		},
	}, r)

	var inserted bool
	err = p.Transact(newContext(), func(ctx context.Context) error {
		var err error
		inserted, err = repo.InsertPlaceholder(ctx, model.NewPlaceholderReplica(42, syncedAt))
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, inserted)
}

func TestUser_Integration__Insert_Get(t *testing.T) {
	tc := integration.NewTestCase(t)
	tc.Truncate("users")

	p := NewProvider(tc.DB)
	repo := NewUser()

	var id int64
	err := p.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = repo.InsertUser(ctx, model.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
			Role:         model.RoleStudent,
			IsEnabled:    true,
			Version:      1,
		})
		return err
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, int64(0), id)

	u, err := repo.GetUser(p.Readonly(newContext()), id)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, u.Valid)
	assert.Equal(t, "alice", u.User.Username)
	assert.Equal(t, int64(1), u.User.Version)
	assert.Equal(t, false, u.User.DeletedAt.Valid)
}
