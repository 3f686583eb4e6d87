package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// EventType ...
type EventType string

const (
	// EventTypeCreated ...
	EventTypeCreated EventType = "CREATED"

	// EventTypeUpdated ...
	EventTypeUpdated EventType = "UPDATED"

	// EventTypeDeleted ...
	EventTypeDeleted EventType = "DELETED"

	// EventTypeRoleChanged ...
	EventTypeRoleChanged EventType = "ROLE_CHANGED"

	// EventTypeActivated ...
	EventTypeActivated EventType = "ACTIVATED"

	// EventTypeDeactivated ...
	EventTypeDeactivated EventType = "DEACTIVATED"

	// EventTypePasswordChanged ...
	EventTypePasswordChanged EventType = "PASSWORD_CHANGED"
)

// legacy producers prefix event types with the entity name
const legacyEventTypePrefix = "USER_"

// AllEventTypes lists every event type this version understands
var AllEventTypes = []EventType{
	EventTypeCreated,
	EventTypeUpdated,
	EventTypeDeleted,
	EventTypeRoleChanged,
	EventTypeActivated,
	EventTypeDeactivated,
	EventTypePasswordChanged,
}

// ParseEventType normalizes a wire value. Values it does not know are kept as is,
// Known() reports false for them.
func ParseEventType(s string) EventType {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, legacyEventTypePrefix)
	for _, t := range AllEventTypes {
		if v == string(t) {
			return t
		}
	}
	return EventType(s)
}

// Known ...
func (t EventType) Known() bool {
	for _, known := range AllEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RoutingKeySuffix returns lowercase dotted kind, e.g. "role.changed"
func (t EventType) RoutingKeySuffix() string {
	return strings.ReplaceAll(strings.ToLower(string(t)), "_", ".")
}

// UnmarshalText ...
func (t *EventType) UnmarshalText(data []byte) error {
	*t = ParseEventType(string(data))
	return nil
}

// DefaultSyncVersion is used when the owner did not send a version
const DefaultSyncVersion int64 = 1

const (
	legacyTimestampLayout     = "2006-01-02T15:04:05"
	legacyTimestampNanoLayout = "2006-01-02T15:04:05.999999999"
)

// Timestamp accepts RFC3339, the legacy layout without zone, epoch milliseconds
// and the [year, month, day, hour, minute, second, nano] array form.
// It is for observability only, a value it cannot parse decodes to the zero time
// and is kept in Invalid.
type Timestamp struct {
	time.Time

	invalid string
}

// Invalid returns the raw value that could not be parsed, empty if none
func (ts Timestamp) Invalid() string {
	return ts.invalid
}

// MarshalJSON ...
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON never fails, see Timestamp
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	t, ok := parseTimestamp(data)
	if !ok {
		*ts = Timestamp{invalid: string(data)}
		return nil
	}
	*ts = Timestamp{Time: t}
	return nil
}

func parseTimestamp(data []byte) (time.Time, bool) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return parseTimestampString(s)
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		return parseTimestampNumber(number), true
	}

	var parts []int
	if err := json.Unmarshal(data, &parts); err == nil {
		return parseTimestampParts(parts)
	}

	var null interface{}
	if err := json.Unmarshal(data, &null); err == nil && null == nil {
		return time.Time{}, true
	}
	return time.Time{}, false
}

func parseTimestampString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(legacyTimestampLayout, s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(legacyTimestampNanoLayout, s, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// epochSecondsLimit separates decimal epoch seconds from epoch milliseconds
const epochSecondsLimit = 1e11

func parseTimestampNumber(n float64) time.Time {
	if n < epochSecondsLimit {
		sec := math.Floor(n)
		return time.Unix(int64(sec), int64((n-sec)*1e9)).UTC()
	}
	return time.UnixMilli(int64(n)).UTC()
}

func parseTimestampParts(parts []int) (time.Time, bool) {
	if len(parts) < 3 || len(parts) > 7 {
		return time.Time{}, false
	}
	v := make([]int, 7)
	copy(v, parts)
	if v[1] < 1 || v[1] > 12 {
		return time.Time{}, false
	}
	return time.Date(v[0], time.Month(v[1]), v[2], v[3], v[4], v[5], v[6], time.UTC), true
}

// Envelope is the message exchanged between the owner and the replicas.
// Nil fields mean "no change" except when the event creates a replica row.
type Envelope struct {
	EventID   string    `json:"eventId,omitempty"`
	EntityID  int64     `json:"entityId"`
	EventType EventType `json:"eventType"`

	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FullName  *string `json:"fullName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Role      *string `json:"role,omitempty"`

	IsEnabled  *bool `json:"isEnabled,omitempty"`
	IsVerified *bool `json:"isVerified,omitempty"`

	Timestamp Timestamp `json:"timestamp"`
	Version   *int64    `json:"version,omitempty"`
	Source    string    `json:"source,omitempty"`
}

// ErrInvalidEnvelope ...
var ErrInvalidEnvelope = errors.New("invalid envelope")

// legacyFields are names used by older producers
type legacyFields struct {
	UserID int64 `json:"userId"`
}

// DecodeEnvelope parses the wire format, ignoring unknown fields.
// The legacy userId field is accepted when entityId is absent.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if env.EntityID == 0 {
		var legacy legacyFields
		if err := json.Unmarshal(data, &legacy); err == nil {
			env.EntityID = legacy.UserID
		}
	}
	if env.EntityID <= 0 {
		return Envelope{}, fmt.Errorf("%w: missing entityId", ErrInvalidEnvelope)
	}
	return env, nil
}

// Encode ...
func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// EffectiveVersion ...
func (e Envelope) EffectiveVersion() int64 {
	if e.Version == nil {
		return DefaultSyncVersion
	}
	return *e.Version
}

// StringPtr ...
func StringPtr(s string) *string {
	return &s
}

// BoolPtr ...
func BoolPtr(b bool) *bool {
	return &b
}

// Int64Ptr ...
func Int64Ptr(n int64) *int64 {
	return &n
}
