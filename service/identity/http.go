package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/httplib"
	"github.com/QuangTung97/user-replica/pkg/otellib"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	serviceTimeout  = 8 * time.Second
	maxRequestBytes = 64 * 1024
)

// UserView is the JSON form of a user, without credentials
type UserView struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	Role       string    `json:"role"`
	IsEnabled  bool      `json:"isEnabled"`
	IsVerified bool      `json:"isVerified"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewUserView ...
func NewUserView(u model.User) UserView {
	return UserView{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName.String,
		Bio:        u.Bio.String,
		AvatarURL:  u.AvatarURL.String,
		Role:       string(u.Role),
		IsEnabled:  u.IsEnabled,
		IsVerified: u.IsVerified,
		Version:    u.Version,
		CreatedAt:  u.CreatedAt,
	}
}

type roleRequest struct {
	Role model.Role `json:"role"`
}

type statusRequest struct {
	Enabled *bool `json:"enabled"`
}

// RegisterRoutes ...
func RegisterRoutes(r chi.Router, service IService) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", register(service))
		r.Get("/{id}", getUser(service))
		r.Put("/{id}/profile", updateProfile(service))
		r.Put("/{id}/role", changeRole(service))
		r.Put("/{id}/status", changeStatus(service))
		r.Put("/{id}/password", changePassword(service))
		r.Post("/{id}/verify", verifyEmail(service))
		r.Delete("/{id}", deleteUser(service))
	})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httplib.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound):
		httplib.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUsernameTaken):
		httplib.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrWrongPassword):
		httplib.WriteError(w, http.StatusForbidden, err.Error())
	default:
		otellib.Extract(r.Context()).Error("identity request error",
			zap.String("path", r.URL.Path), zap.Error(err))
		httplib.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httplib.WriteError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		httplib.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func register(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if !decodeBody(w, r, &input) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		user, err := service.Register(ctx, input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httplib.WriteJSON(w, http.StatusCreated, NewUserView(user))
	}
}

func getUser(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		user, err := service.Get(ctx, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httplib.WriteJSON(w, http.StatusOK, NewUserView(user))
	}
}

func updateProfile(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		var input ProfileInput
		if !decodeBody(w, r, &input) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		user, err := service.UpdateProfile(ctx, id, input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httplib.WriteJSON(w, http.StatusOK, NewUserView(user))
	}
}

func changeRole(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		var req roleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		user, err := service.ChangeRole(ctx, id, req.Role)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httplib.WriteJSON(w, http.StatusOK, NewUserView(user))
	}
}

func changeStatus(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		var req statusRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Enabled == nil {
			httplib.WriteError(w, http.StatusBadRequest, "missing enabled")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		var user model.User
		var err error
		if *req.Enabled {
			user, err = service.Activate(ctx, id)
		} else {
			user, err = service.Deactivate(ctx, id)
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httplib.WriteJSON(w, http.StatusOK, NewUserView(user))
	}
}

func changePassword(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		var input PasswordInput
		if !decodeBody(w, r, &input) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		if err := service.ChangePassword(ctx, id, input); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func verifyEmail(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		user, err := service.VerifyEmail(ctx, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httplib.WriteJSON(w, http.StatusOK, NewUserView(user))
	}
}

func deleteUser(service IService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
		defer cancel()

		if err := service.Delete(ctx, id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
