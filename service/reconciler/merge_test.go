package reconciler

import (
	"database/sql"
	"testing"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/stretchr/testify/assert"
)

var (
	time1 = time.Date(2022, 5, 10, 10, 0, 0, 0, time.UTC)
	time2 = time.Date(2022, 5, 10, 11, 0, 0, 0, time.UTC)
)

func aliceReplica() model.UserReplica {
	return model.UserReplica{
		ID:          42,
		Username:    "alice",
		Email:       "alice@example.com",
		FullName:    sql.NullString{Valid: true, String: "Alice"},
		Role:        "STUDENT",
		IsActive:    true,
		SyncedAt:    time1,
		SyncVersion: 1,
	}
}

func existingOf(r model.UserReplica) model.NullUserReplica {
	return model.NullUserReplica{Valid: true, Replica: r}
}

func TestDecide__Created_No_Row__Insert(t *testing.T) {
	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("alice"),
		Email:     model.StringPtr("alice@example.com"),
		FullName:  model.StringPtr("Alice"),
		Role:      model.StringPtr("STUDENT"),
		IsEnabled: model.BoolPtr(true),
		Version:   model.Int64Ptr(1),
	}, time1, config.StaleVersionApply)

	assert.Equal(t, Decision{
		Action:  ActionInsert,
		Replica: aliceReplica(),
	}, d)
}

func TestDecide__Created_Without_Fields__Inferred_Defaults(t *testing.T) {
	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
	}, time1, config.StaleVersionApply)

	assert.Equal(t, Decision{
		Action: ActionInsert,
		Replica: model.UserReplica{
			ID:          42,
			Username:    "user_42",
			Email:       "user_42@placeholder.local",
			Role:        "STUDENT",
			IsActive:    true,
			SyncedAt:    time1,
			SyncVersion: 1,
		},
	}, d)
}

func TestDecide__Created_Default_Email_From_Username(t *testing.T) {
	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("alice"),
	}, time1, config.StaleVersionApply)

	assert.Equal(t, "alice@placeholder.local", d.Replica.Email)
}

func TestDecide__Created_On_Existing_Row__Update(t *testing.T) {
	d := Decide(existingOf(aliceReplica()), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
		FullName:  model.StringPtr("Alice Nguyen"),
		Version:   model.Int64Ptr(2),
	}, time2, config.StaleVersionApply)

	expected := aliceReplica()
	expected.FullName = sql.NullString{Valid: true, String: "Alice Nguyen"}
	expected.SyncedAt = time2
	expected.SyncVersion = 2

	assert.Equal(t, Decision{Action: ActionUpdate, Replica: expected}, d)
}

func TestDecide__Updated_Only_Non_Nil_Fields(t *testing.T) {
	existing := aliceReplica()
	existing.Bio = sql.NullString{Valid: true, String: "hello"}

	d := Decide(existingOf(existing), model.Envelope{
		EntityID:   42,
		EventType:  model.EventTypeUpdated,
		Email:      model.StringPtr("new@example.com"),
		AvatarURL:  model.StringPtr("http://avatar"),
		IsVerified: model.BoolPtr(true),
	}, time2, config.StaleVersionApply)

	expected := existing
	expected.Email = "new@example.com"
	expected.AvatarURL = sql.NullString{Valid: true, String: "http://avatar"}
	expected.IsVerified = true
	expected.SyncedAt = time2

	assert.Equal(t, Decision{Action: ActionUpdate, Replica: expected}, d)
}

func TestDecide__Updated_Empty_String_Clears_Optional_Field(t *testing.T) {
	d := Decide(existingOf(aliceReplica()), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr(""),
		Username:  model.StringPtr(""),
	}, time2, config.StaleVersionApply)

	assert.Equal(t, sql.NullString{}, d.Replica.FullName)
	assert.Equal(t, "alice", d.Replica.Username)
}

func TestDecide__Updated_No_Row__Self_Healing_Create(t *testing.T) {
	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr("B"),
	}, time1, config.StaleVersionApply)

	assert.Equal(t, Decision{
		Action: ActionInsert,
		Replica: model.UserReplica{
			ID:          7,
			Username:    "user_7",
			Email:       "user_7@placeholder.local",
			FullName:    sql.NullString{Valid: true, String: "B"},
			Role:        "STUDENT",
			IsActive:    true,
			SyncedAt:    time1,
			SyncVersion: 1,
		},
	}, d)
}

func TestDecide__Role_Changed(t *testing.T) {
	d := Decide(existingOf(aliceReplica()), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeRoleChanged,
		Username:  model.StringPtr("alice"),
		Role:      model.StringPtr("TEACHER"),
		Version:   model.Int64Ptr(5),
	}, time2, config.StaleVersionApply)

	assert.Equal(t, ActionUpdate, d.Action)
	assert.Equal(t, "TEACHER", d.Replica.Role)
	assert.Equal(t, int64(5), d.Replica.SyncVersion)
	assert.Equal(t, true, d.Replica.IsActive)
}

func TestDecide__Role_Changed_No_Row__Create(t *testing.T) {
	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeRoleChanged,
		Username:  model.StringPtr("alice"),
		Role:      model.StringPtr("ADMIN"),
	}, time1, config.StaleVersionApply)

	assert.Equal(t, ActionInsert, d.Action)
	assert.Equal(t, "alice", d.Replica.Username)
	assert.Equal(t, "ADMIN", d.Replica.Role)
}

func TestDecide__Activated_Deactivated_Force_Active_Flag(t *testing.T) {
	d := Decide(existingOf(aliceReplica()), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeDeactivated,
		IsEnabled: model.BoolPtr(true),
	}, time2, config.StaleVersionApply)
	assert.Equal(t, ActionUpdate, d.Action)
	assert.Equal(t, false, d.Replica.IsActive)

	d = Decide(existingOf(d.Replica), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeActivated,
	}, time2, config.StaleVersionApply)
	assert.Equal(t, ActionUpdate, d.Action)
	assert.Equal(t, true, d.Replica.IsActive)

	d = Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  43,
		EventType: model.EventTypeDeactivated,
	}, time2, config.StaleVersionApply)
	assert.Equal(t, ActionInsert, d.Action)
	assert.Equal(t, false, d.Replica.IsActive)
}

func TestDecide__Deleted_Soft_Delete(t *testing.T) {
	d := Decide(existingOf(aliceReplica()), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeDeleted,
		Username:  model.StringPtr("alice"),
		IsEnabled: model.BoolPtr(false),
		Version:   model.Int64Ptr(9),
	}, time2, config.StaleVersionApply)

	expected := aliceReplica()
	expected.IsActive = false
	expected.SyncedAt = time2
	expected.SyncVersion = 9

	assert.Equal(t, Decision{Action: ActionSoftDelete, Replica: expected}, d)
}

func TestDecide__Deleted_No_Row__Noop(t *testing.T) {
	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeDeleted,
	}, time2, config.StaleVersionApply)

	assert.Equal(t, Decision{Action: ActionNoop}, d)
}

func TestDecide__Password_Changed_And_Unknown__Noop(t *testing.T) {
	for _, eventType := range []model.EventType{model.EventTypePasswordChanged, "MERGED"} {
		d := Decide(existingOf(aliceReplica()), model.Envelope{
			EntityID:  42,
			EventType: eventType,
			FullName:  model.StringPtr("ignored"),
		}, time2, config.StaleVersionApply)

		assert.Equal(t, Decision{Action: ActionNoop}, d)
	}
}

func TestDecide__Placeholder_Upgraded(t *testing.T) {
	placeholder := model.NewPlaceholderReplica(42, time1)

	d := Decide(existingOf(placeholder), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("alice"),
		Email:     model.StringPtr("alice@example.com"),
		FullName:  model.StringPtr("Alice"),
	}, time2, config.StaleVersionApply)

	assert.Equal(t, ActionUpdate, d.Action)
	assert.Equal(t, "alice", d.Replica.Username)
	assert.Equal(t, "alice@example.com", d.Replica.Email)
	assert.Equal(t, model.DefaultSyncVersion, d.Replica.SyncVersion)
	assert.Equal(t, false, d.Replica.IsPlaceholder())
}

func TestDecide__Idempotent_For_Every_Event_Type(t *testing.T) {
	for _, eventType := range model.AllEventTypes {
		env := model.Envelope{
			EntityID:   42,
			EventType:  eventType,
			Username:   model.StringPtr("alice"),
			Email:      model.StringPtr("alice@example.com"),
			FullName:   model.StringPtr("Alice B"),
			Role:       model.StringPtr("TEACHER"),
			IsEnabled:  model.BoolPtr(true),
			IsVerified: model.BoolPtr(true),
			Version:    model.Int64Ptr(4),
		}

		for _, start := range []model.NullUserReplica{{}, existingOf(aliceReplica())} {
			first := Decide(start, env, time2, config.StaleVersionApply)

			state := start
			if first.Action != ActionNoop {
				state = existingOf(first.Replica)
			}

			second := Decide(state, env, time2, config.StaleVersionApply)
			if second.Action == ActionNoop {
				continue
			}
			assert.Equal(t, state.Replica, second.Replica, "event type %s", eventType)
		}
	}
}

func TestDecide__Out_Of_Order__Delivery_Order_Wins(t *testing.T) {
	now := time1

	updated := model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr("B"),
		Version:   model.Int64Ptr(2),
	}
	created := model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("u7"),
		FullName:  model.StringPtr("A"),
		Version:   model.Int64Ptr(1),
	}

	d := Decide(model.NullUserReplica{}, updated, now, config.StaleVersionApply)
	assert.Equal(t, ActionInsert, d.Action)

	d = Decide(existingOf(d.Replica), created, now, config.StaleVersionApply)
	assert.Equal(t, ActionUpdate, d.Action)
	assert.Equal(t, "u7", d.Replica.Username)
	assert.Equal(t, "A", d.Replica.FullName.String)
	assert.Equal(t, int64(1), d.Replica.SyncVersion)
}

func TestDecide__Out_Of_Order__Skip_Stale_Version(t *testing.T) {
	now := time1

	d := Decide(model.NullUserReplica{}, model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr("B"),
		Version:   model.Int64Ptr(2),
	}, now, config.StaleVersionSkip)
	assert.Equal(t, ActionInsert, d.Action)

	inserted := d.Replica

	d = Decide(existingOf(inserted), model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("u7"),
		FullName:  model.StringPtr("A"),
		Version:   model.Int64Ptr(1),
	}, now, config.StaleVersionSkip)

	assert.Equal(t, Decision{Action: ActionSkip, Replica: inserted}, d)
	assert.Equal(t, "B", d.Replica.FullName.String)
}

func TestDecide__Skip_Policy_Without_Version_Applies(t *testing.T) {
	existing := aliceReplica()
	existing.SyncVersion = 5

	d := Decide(existingOf(existing), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr("C"),
	}, time2, config.StaleVersionSkip)

	assert.Equal(t, ActionUpdate, d.Action)
	assert.Equal(t, int64(5), d.Replica.SyncVersion)
	assert.Equal(t, "C", d.Replica.FullName.String)
}
