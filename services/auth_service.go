package services

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	userRepo        interfaces.UserRepository
	jwtService      *utils.JWTService
	passwordService *utils.PasswordService
	blacklist       interfaces.TokenBlacklist
	validator       *utils.ValidationService
}

func NewAuthService(
	userRepo interfaces.UserRepository,
	jwtService *utils.JWTService,
	passwordService *utils.PasswordService,
	blacklist interfaces.TokenBlacklist,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		jwtService:      jwtService,
		passwordService: passwordService,
		blacklist:       blacklist,
		validator:       utils.NewValidationService(),
	}
}

// Signup registers a citizen. Any role in the request is ignored.
func (as *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)
	exists, err := as.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewDatabaseError("check email", err)
	}
	if exists {
		return nil, utils.NewEmailInUseError()
	}

	hashedPassword, err := as.passwordService.Hash(req.Password)
	if err != nil {
		logrus.Error("Failed to hash password: ", err)
		return nil, utils.NewInternalError("Failed to create user")
	}

	if req.Role != "" {
		logrus.WithField("email", utils.MaskEmail(email)).Debug("Ignoring role supplied at signup")
	}

	now := time.Now()
	user := &models.User{
		Name:                  strings.TrimSpace(req.Name),
		Email:                 email,
		Password:              hashedPassword,
		Role:                  models.RoleCitizen,
		Phone:                 req.Phone,
		Region:                req.Region,
		Location:              req.Location,
		State:                 req.State,
		District:              req.District,
		IsActive:              true,
		IsVolunteer:           req.IsVolunteer,
		VolunteerSkills:       req.VolunteerSkills,
		VolunteerAvailability: req.VolunteerAvailability,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := as.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, utils.NewEmailInUseError()
		}
		logrus.Error("Failed to create user: ", err)
		return nil, utils.NewDatabaseError("create user", err)
	}

	logrus.WithFields(logrus.Fields{
		"userId":      user.ID.Hex(),
		"isVolunteer": user.IsVolunteer,
	}).Info("Citizen registered")

	return user, nil
}

// Signin verifies credentials and issues a bearer token.
func (as *AuthService) Signin(ctx context.Context, req models.LoginRequest) (*models.JWTResponse, error) {
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := as.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, utils.NewDatabaseError("get user", err)
	}

	if !user.IsActive || !as.passwordService.Verify(user.Password, req.Password) {
		return nil, utils.NewInvalidCredentialsError()
	}

	token, err := as.jwtService.GenerateToken(utils.TokenSubject{
		UserID:   user.ID.Hex(),
		Name:     user.Name,
		Email:    user.Email,
		District: user.District,
		Role:     string(user.Role),
	})
	if err != nil {
		logrus.Error("Failed to generate token: ", err)
		return nil, utils.NewInternalError("Failed to generate authentication token")
	}

	return &models.JWTResponse{
		Token:    token,
		Type:     "Bearer",
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Email:    user.Email,
		District: user.District,
		Roles:    []string{string(user.Role)},
	}, nil
}

// Signout revokes the presented token until it would have expired.
func (as *AuthService) Signout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || as.blacklist == nil {
		return nil
	}
	if err := as.blacklist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		logrus.WithError(err).Error("Failed to revoke token")
		return utils.NewInternalError("Failed to sign out")
	}
	return nil
}

// Authenticate validates a raw token and loads its active user.
func (as *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, *utils.Claims, error) {
	claims, err := as.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, nil, utils.NewUnauthorizedError("Invalid or expired token")
	}
	if claims.TokenType != utils.TokenTypeAccess {
		return nil, nil, utils.NewUnauthorizedError("Invalid token type")
	}

	if as.blacklist != nil {
		revoked, err := as.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			logrus.WithError(err).Warn("Token revocation check failed")
			return nil, nil, utils.NewUnauthorizedError("Unable to verify token")
		}
		if revoked {
			return nil, nil, utils.NewUnauthorizedError("Token has been revoked")
		}
	}

	user, err := as.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, utils.NewUnauthorizedError("User not found")
	}
	if !user.IsActive {
		return nil, nil, utils.NewUnauthorizedError("Account is deactivated")
	}

	return user, claims, nil
}
