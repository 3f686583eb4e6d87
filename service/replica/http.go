package replica

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/httplib"
	"github.com/QuangTung97/user-replica/pkg/otellib"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const serviceTimeout = 5 * time.Second

// View is the JSON form of a replica
type View struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    *string   `json:"fullName"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatarUrl"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
	IsVerified  bool      `json:"isVerified"`
	Placeholder bool      `json:"placeholder"`
	SyncedAt    time.Time `json:"syncedAt"`
	SyncVersion int64     `json:"syncVersion"`
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// NewView ...
func NewView(r model.UserReplica) View {
	return View{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		FullName:    nullable(r.FullName),
		Bio:         nullable(r.Bio),
		AvatarURL:   nullable(r.AvatarURL),
		Role:        r.Role,
		IsActive:    r.IsActive,
		IsVerified:  r.IsVerified,
		Placeholder: r.IsPlaceholder(),
		SyncedAt:    r.SyncedAt,
		SyncVersion: r.SyncVersion,
	}
}

// RegisterRoutes ...
func RegisterRoutes(r chi.Router, reader IReader) {
	r.Get("/replicas/{id}", getReplica(reader))
}

func getReplica(reader IReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			httplib.WriteError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		replica, err := reader.GetOrCreate(ctx, id)
		if err != nil {
			otellib.Extract(r.Context()).Error("get replica error", zap.Int64("entity_id", id), zap.Error(err))
			httplib.WriteError(w, http.StatusInternalServerError, "failed to get replica")
			return
		}
		httplib.WriteJSON(w, http.StatusOK, NewView(replica))
	}
}
