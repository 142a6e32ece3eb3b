package identity

import (
	"context"

	"github.com/notaventas/backend/internal/domain/identity"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles authentication: login, token refresh, logout and
// password changes. Revocation goes through the token blacklist so that
// logout and password changes take effect before tokens expire.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown user", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.CanLogin() {
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", req.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// The login itself succeeded; losing the timestamp is tolerable.
		s.logger.Error("Failed to record login timestamp", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  ToUserResponse(user),
	}, nil
}

// Refresh validates a refresh token and issues a new token pair. The old
// refresh token is blacklisted so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	if err := s.checkRevocation(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Token refresh for unknown user", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to rotate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	if jti := claims.ID; jti != "" {
		if err := s.blacklist.AddToBlacklist(ctx, jti, claims.GetRemainingTTL()); err != nil {
			s.logger.Error("Failed to blacklist rotated refresh token", zap.Error(err))
		}
	}

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  ToUserResponse(user),
	}, nil
}

// Logout revokes the access token and, when present, the refresh token
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		return mapTokenError(err)
	}

	if claims.ID != "" {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			s.logger.Error("Failed to blacklist access token on logout", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke session")
		}
	}

	if refreshToken != "" {
		refreshClaims, err := s.jwtService.ValidateRefreshToken(refreshToken)
		if err == nil && refreshClaims.ID != "" {
			if err := s.blacklist.AddToBlacklist(ctx, refreshClaims.ID, refreshClaims.GetRemainingTTL()); err != nil {
				s.logger.Error("Failed to blacklist refresh token on logout", zap.Error(err))
			}
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// ChangePassword changes the caller's password and revokes every session
// issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.findByStringID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate sessions after password change",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	s.logger.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// VerifyPassword confirms the caller's own password. It backs the
// re-authentication step the UI requires before destructive actions.
func (s *AuthService) VerifyPassword(ctx context.Context, userID string, req VerifyPasswordRequest) error {
	user, err := s.findByStringID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(req.Password) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Password does not match")
	}
	return nil
}

// ValidateAccessToken verifies signature, expiry and revocation state
func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateAccessToken(token)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if err := s.checkRevocation(ctx, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) checkRevocation(ctx context.Context, claims *auth.Claims) error {
	if claims.ID != "" {
		blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("Blacklist lookup failed", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify session")
		}
		if blacklisted {
			return shared.NewDomainError("TOKEN_REVOKED", "Session has been revoked")
		}
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("Blacklist lookup failed", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify session")
	}
	if invalidated {
		return shared.NewDomainError("TOKEN_REVOKED", "Session has been revoked")
	}

	return nil
}

func (s *AuthService) findByStringID(ctx context.Context, userID string) (*identity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid user ID")
	}
	return s.userRepo.FindByID(ctx, id)
}

func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case auth.ErrTokenBlacklisted:
		return shared.NewDomainError("TOKEN_REVOKED", "Session has been revoked")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	}
}
