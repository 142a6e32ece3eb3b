package identity

import (
	"context"

	"github.com/notaventas/backend/internal/domain/identity"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles administration of back-office accounts
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	jwt       *auth.JWTService
	logger    *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo identity.UserRepository,
	blacklist auth.TokenBlacklist,
	jwt *auth.JWTService,
	logger *zap.Logger,
) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo:  userRepo,
		blacklist: blacklist,
		jwt:       jwt,
		logger:    logger,
	}
}

// Create creates a new active account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	if err := user.SetProfile(req.FirstName, req.LastName, req.Email, req.Position); err != nil {
		return nil, err
	}
	if req.RUT != "" {
		if err := user.SetRUT(req.RUT); err != nil {
			return nil, err
		}
	}
	if req.IsAdmin {
		user.GrantAdmin()
	}
	if req.CreatedBy != nil {
		user.CreatedBy = req.CreatedBy
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("username", user.Username),
		zap.Bool("is_admin", user.IsAdmin))

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "username"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToUserResponses(users), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a user's profile. Nil request fields keep their value.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstName := user.FirstName
	lastName := user.LastName
	email := user.Email
	position := user.Position
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Position != nil {
		position = *req.Position
	}

	if err := user.SetProfile(firstName, lastName, email, position); err != nil {
		return nil, err
	}
	if req.RUT != nil {
		if err := user.SetRUT(*req.RUT); err != nil {
			return nil, err
		}
	}
	if req.UpdatedBy != nil {
		user.UpdatedBy = req.UpdatedBy
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GrantAdmin gives a user administrative privileges
func (s *UserService) GrantAdmin(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	return s.mutate(ctx, userID, func(user *identity.User) error {
		user.GrantAdmin()
		return nil
	})
}

// RevokeAdmin removes administrative privileges. Existing sessions are
// invalidated so the stale is_admin claim cannot be used.
func (s *UserService) RevokeAdmin(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	response, err := s.mutate(ctx, userID, func(user *identity.User) error {
		user.RevokeAdmin()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidateSessions(ctx, userID)
	return response, nil
}

// Activate re-enables a deactivated account
func (s *UserService) Activate(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	return s.mutate(ctx, userID, func(user *identity.User) error {
		return user.Activate()
	})
}

// Deactivate disables an account and revokes its sessions
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	response, err := s.mutate(ctx, userID, func(user *identity.User) error {
		return user.Deactivate()
	})
	if err != nil {
		return nil, err
	}
	s.invalidateSessions(ctx, userID)
	return response, nil
}

// ResetPassword sets a new password without checking the old one and
// revokes the user's sessions.
func (s *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.invalidateSessions(ctx, userID)
	s.logger.Info("Password reset", zap.String("user_id", userID.String()))
	return nil
}

// Delete removes an account
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.invalidateSessions(ctx, userID)
	return nil
}

func (s *UserService) mutate(ctx context.Context, userID uuid.UUID, fn func(*identity.User) error) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

func (s *UserService) invalidateSessions(ctx context.Context, userID uuid.UUID) {
	if s.blacklist == nil || s.jwt == nil {
		return
	}
	ttl := s.jwt.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate user sessions",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
}
