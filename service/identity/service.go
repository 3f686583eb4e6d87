package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/QuangTung97/user-replica/service/publisher"
	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out identity_mocks.go . IService

// IService is the owner of users, every mutation is published after its transaction committed
type IService interface {
	Register(ctx context.Context, input RegisterInput) (model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	UpdateProfile(ctx context.Context, id int64, input ProfileInput) (model.User, error)
	ChangeRole(ctx context.Context, id int64, role model.Role) (model.User, error)
	Activate(ctx context.Context, id int64) (model.User, error)
	Deactivate(ctx context.Context, id int64) (model.User, error)
	Delete(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, input PasswordInput) error
	VerifyEmail(ctx context.Context, id int64) (model.User, error)
}

// ErrUserNotFound ...
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken when username or email already exists
var ErrUsernameTaken = errors.New("username or email already taken")

// ErrInvalidInput ...
var ErrInvalidInput = errors.New("invalid input")

// ErrWrongPassword ...
var ErrWrongPassword = errors.New("wrong password")

// RegisterInput ...
type RegisterInput struct {
	Username string     `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string     `json:"email" validate:"required,email,max=100"`
	Password string     `json:"password" validate:"required,min=8,max=72"`
	FullName string     `json:"fullName" validate:"max=100"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=STUDENT TEACHER QUESTION_SETTER ADMIN"`
}

// ProfileInput nil fields are kept unchanged
type ProfileInput struct {
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	FullName  *string `json:"fullName" validate:"omitempty,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=2000"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url,max=500"`
}

// PasswordInput ...
type PasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// Service ...
type Service struct {
	provider  repository.Provider
	userRepo  repository.User
	publisher publisher.IPublisher

	validate   *validator.Validate
	bcryptCost int
	now        func() time.Time
}

var _ IService = &Service{}

// Option ...
type Option func(s *Service)

// WithBcryptCost ...
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService ...
func NewService(
	provider repository.Provider, userRepo repository.User, pub publisher.IPublisher, options ...Option,
) *Service {
	s := &Service{
		provider:  provider,
		userRepo:  userRepo,
		publisher: pub,

		validate:   validator.New(),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Service) validateInput(input interface{}) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: s}
}

// Register ...
func (s *Service) Register(ctx context.Context, input RegisterInput) (model.User, error) {
	if err := s.validateInput(input); err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return model.User{}, err
	}

	role := input.Role
	if role == "" {
		role = model.RoleStudent
	}

	user := model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     toNullString(input.FullName),
		Role:         role,
		IsEnabled:    true,
		Version:      1,
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.userRepo.InsertUser(ctx, user)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
	if isDuplicateEntry(err) {
		return model.User{}, ErrUsernameTaken
	}
	if err != nil {
		return model.User{}, err
	}

	s.publisher.PublishCreated(ctx, user)
	return user, nil
}

// Get ...
func (s *Service) Get(ctx context.Context, id int64) (model.User, error) {
	nullUser, err := s.userRepo.GetUser(s.provider.Readonly(ctx), id)
	if err != nil {
		return model.User{}, err
	}
	if !nullUser.Valid || nullUser.User.DeletedAt.Valid {
		return model.User{}, ErrUserNotFound
	}
	return nullUser.User, nil
}

// mutate locks the user, applies fn and increments the version in one transaction
func (s *Service) mutate(ctx context.Context, id int64, fn func(user *model.User) error) (model.User, error) {
	var user model.User
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullUser, err := s.userRepo.LockUser(ctx, id)
		if err != nil {
			return err
		}
		if !nullUser.Valid || nullUser.User.DeletedAt.Valid {
			return ErrUserNotFound
		}

		user = nullUser.User
		if err := fn(&user); err != nil {
			return err
		}
		user.Version++
		return s.userRepo.UpdateUser(ctx, user)
	})
	if isDuplicateEntry(err) {
		return model.User{}, ErrUsernameTaken
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// UpdateProfile ...
func (s *Service) UpdateProfile(ctx context.Context, id int64, input ProfileInput) (model.User, error) {
	if err := s.validateInput(input); err != nil {
		return model.User{}, err
	}

	user, err := s.mutate(ctx, id, func(user *model.User) error {
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.FullName != nil {
			user.FullName = toNullString(*input.FullName)
		}
		if input.Bio != nil {
			user.Bio = toNullString(*input.Bio)
		}
		if input.AvatarURL != nil {
			user.AvatarURL = toNullString(*input.AvatarURL)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.publisher.PublishUpdated(ctx, user)
	return user, nil
}

// ChangeRole ...
func (s *Service) ChangeRole(ctx context.Context, id int64, role model.Role) (model.User, error) {
	if !role.Valid() {
		return model.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	var oldRole model.Role
	user, err := s.mutate(ctx, id, func(user *model.User) error {
		oldRole = user.Role
		user.Role = role
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.publisher.PublishRoleChanged(ctx, user, oldRole)
	return user, nil
}

// Activate ...
func (s *Service) Activate(ctx context.Context, id int64) (model.User, error) {
	user, err := s.mutate(ctx, id, func(user *model.User) error {
		user.IsEnabled = true
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.publisher.PublishActivated(ctx, user)
	return user, nil
}

// Deactivate ...
func (s *Service) Deactivate(ctx context.Context, id int64) (model.User, error) {
	user, err := s.mutate(ctx, id, func(user *model.User) error {
		user.IsEnabled = false
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.publisher.PublishDeactivated(ctx, user)
	return user, nil
}

// Delete is a soft delete, the row is kept with deleted_at
func (s *Service) Delete(ctx context.Context, id int64) error {
	user, err := s.mutate(ctx, id, func(user *model.User) error {
		user.IsEnabled = false
		user.DeletedAt = sql.NullTime{Valid: true, Time: s.now()}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.PublishDeleted(ctx, user)
	return nil
}

// ChangePassword ...
func (s *Service) ChangePassword(ctx context.Context, id int64, input PasswordInput) error {
	if err := s.validateInput(input); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	user, err := s.mutate(ctx, id, func(user *model.User) error {
		err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword))
		if err != nil {
			return ErrWrongPassword
		}
		user.PasswordHash = string(hash)
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.PublishPasswordChanged(ctx, user)
	return nil
}

// VerifyEmail ...
func (s *Service) VerifyEmail(ctx context.Context, id int64) (model.User, error) {
	user, err := s.mutate(ctx, id, func(user *model.User) error {
		user.IsVerified = true
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.publisher.PublishUpdated(ctx, user)
	return user, nil
}
