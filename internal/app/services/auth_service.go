package services

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/app/repositories"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/auth"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	coachRepo  *repositories.CoachRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	coachRepo *repositories.CoachRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		coachRepo:  coachRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters long")
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return apperrors.NewValidationError("password must contain at least one letter")
	}
	if !hasDigit {
		return apperrors.NewValidationError("password must contain at least one digit")
	}

	return nil
}

// Register registers a new marketplace user. Registering with the COACH role
// also creates an empty coach profile owned by the user.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	if !req.RoleType.IsValid() || req.RoleType == models.RoleAdmin {
		return nil, apperrors.NewValidationError("role must be COACH or CLIENT")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  req.RoleType,
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if req.RoleType == models.RoleCoach {
		coach := &models.CoachProfile{UserID: user.ID}
		if err := s.coachRepo.Create(ctx, coach); err != nil {
			return nil, fmt.Errorf("error creating coach profile: %w", err)
		}
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.RoleType)).Msg("User registered")

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user with email and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Could not update last login time")
	}

	return s.generateAuthResponse(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving token owner: %w", err)
	}

	// Rotate: the old token must not be usable again
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking old token: %w", err)
	}

	return s.generateAuthResponse(ctx, user)
}

// Logout revokes every active refresh token of the user
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}

// generateAuthResponse creates a token pair, persists the refresh token and
// bundles it with basic user information
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			RefreshToken:          refreshToken,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		User: dto.UserResponse{
			ID:              user.ID,
			Email:           user.Email,
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			Role:            string(user.RoleType),
			ProfilePhotoURL: user.ProfilePhotoURL,
		},
	}, nil
}
