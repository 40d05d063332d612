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

// UserService covers officer management by admins and citizen volunteer profiles.
type UserService struct {
	userRepo        interfaces.UserRepository
	passwordService *utils.PasswordService
	validator       *utils.ValidationService
}

func NewUserService(userRepo interfaces.UserRepository, passwordService *utils.PasswordService) *UserService {
	return &UserService{
		userRepo:        userRepo,
		passwordService: passwordService,
		validator:       utils.NewValidationService(),
	}
}

func (us *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := us.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "User", "get user")
	}
	return user, nil
}

// GetOfficer loads id and requires it to be an officer.
func (us *UserService) GetOfficer(ctx context.Context, id string) (*models.User, error) {
	user, err := us.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Officer", "get officer")
	}
	if !user.IsOfficer() {
		return nil, utils.NewNotFoundError("Officer")
	}
	return user, nil
}

// CreateOfficer returns the created officer and the acknowledgement shown to the admin.
func (us *UserService) CreateOfficer(ctx context.Context, admin *models.User, req models.CreateOfficerRequest) (*models.User, string, error) {
	if err := us.validator.Validate(req); err != nil {
		return nil, "", err
	}

	email := utils.NormalizeEmail(req.Email)
	exists, err := us.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", utils.NewDatabaseError("check email", err)
	}
	if exists {
		return nil, "", utils.NewEmailInUseError()
	}

	password := strings.TrimSpace(req.Password)
	passwordProvided := password != ""
	if !passwordProvided {
		password = utils.GenerateRandomPassword()
	}

	hashedPassword, err := us.passwordService.Hash(password)
	if err != nil {
		return nil, "", utils.NewInternalError("Failed to create officer")
	}

	now := time.Now()
	officer := &models.User{
		Name:            strings.TrimSpace(req.Name),
		Email:           email,
		Password:        hashedPassword,
		Role:            models.RoleOfficer,
		Phone:           req.Phone,
		State:           req.State,
		District:        req.District,
		Location:        req.Location,
		AssignedAdminID: utils.ObjectIDPtr(admin.ID),
		Status:          models.OfficerActive,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := us.userRepo.Create(ctx, officer); err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, "", utils.NewEmailInUseError()
		}
		return nil, "", utils.NewDatabaseError("create officer", err)
	}

	logrus.WithFields(logrus.Fields{
		"officerId": officer.ID.Hex(),
		"adminId":   admin.ID.Hex(),
	}).Info("Officer created")

	message := "Officer created successfully! Email: " + officer.Email
	if passwordProvided {
		message += " | Password has been set. Officer can login immediately."
	}
	return officer, message, nil
}

func (us *UserService) ListOfficersByAdmin(ctx context.Context, adminID string) ([]*models.User, error) {
	officers, err := us.userRepo.List(ctx, interfaces.UserFilter{
		Role:            models.RoleOfficer,
		AssignedAdminID: adminID,
	})
	if err != nil {
		return nil, utils.NewDatabaseError("list officers", err)
	}
	return officers, nil
}

func (us *UserService) ListOfficersByDistrict(ctx context.Context, district string) ([]*models.User, error) {
	officers, err := us.userRepo.List(ctx, interfaces.UserFilter{Role: models.RoleOfficer, District: district})
	if err != nil {
		return nil, utils.NewDatabaseError("list officers", err)
	}
	return officers, nil
}

func (us *UserService) UpdateOfficer(ctx context.Context, id string, req models.UpdateOfficerRequest) (*models.User, error) {
	if err := us.validator.Validate(req); err != nil {
		return nil, err
	}

	officer, err := us.GetOfficer(ctx, id)
	if err != nil {
		return nil, err
	}

	officer.Name = strings.TrimSpace(req.Name)
	officer.Phone = req.Phone
	officer.State = req.State
	officer.District = req.District
	officer.Location = req.Location

	if password := strings.TrimSpace(req.Password); password != "" {
		hashed, err := us.passwordService.Hash(password)
		if err != nil {
			return nil, utils.NewInternalError("Failed to update password")
		}
		officer.Password = hashed
	}

	return us.save(ctx, officer)
}

func (us *UserService) UpdateOfficerStatus(ctx context.Context, id, status string) (*models.User, error) {
	parsed, ok := models.ParseOfficerStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("officer status", status)
	}

	officer, err := us.GetOfficer(ctx, id)
	if err != nil {
		return nil, err
	}
	officer.Status = parsed
	return us.save(ctx, officer)
}

// SetOfficerActive toggles the login flag without touching the officer status.
func (us *UserService) SetOfficerActive(ctx context.Context, id string, active bool) error {
	officer, err := us.GetOfficer(ctx, id)
	if err != nil {
		return err
	}
	officer.IsActive = active
	_, err = us.save(ctx, officer)
	return err
}

func (us *UserService) DeleteOfficer(ctx context.Context, id string) error {
	if _, err := us.GetOfficer(ctx, id); err != nil {
		return err
	}
	if err := us.userRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Officer", "delete officer")
	}
	logrus.WithField("officerId", id).Info("Officer removed")
	return nil
}

// Volunteers

func (us *UserService) ListVolunteersByDistrict(ctx context.Context, district string) ([]*models.User, error) {
	isVolunteer := true
	volunteers, err := us.userRepo.List(ctx, interfaces.UserFilter{
		Role:        models.RoleCitizen,
		District:    district,
		IsVolunteer: &isVolunteer,
	})
	if err != nil {
		return nil, utils.NewDatabaseError("list volunteers", err)
	}
	return volunteers, nil
}

func (us *UserService) CountVolunteersByDistrict(ctx context.Context, district string) (int64, error) {
	isVolunteer := true
	count, err := us.userRepo.Count(ctx, interfaces.UserFilter{
		Role:        models.RoleCitizen,
		District:    district,
		IsVolunteer: &isVolunteer,
	})
	if err != nil {
		return 0, utils.NewDatabaseError("count volunteers", err)
	}
	return count, nil
}

func (us *UserService) CountAllVolunteers(ctx context.Context) (int64, error) {
	return us.CountVolunteersByDistrict(ctx, "")
}

// ListUsersByIDs resolves ids, skipping the ones that do not exist.
func (us *UserService) ListUsersByIDs(ctx context.Context, ids models.IDList) []*models.User {
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		user, err := us.userRepo.GetByID(ctx, id)
		if err != nil {
			logrus.WithField("userId", id).Debug("Skipping unknown user id")
			continue
		}
		users = append(users, user)
	}
	return users
}

func (us *UserService) UpdateVolunteerProfile(ctx context.Context, userID string, req models.UpdateVolunteerRequest) (*models.User, error) {
	user, err := us.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.IsVolunteer != nil {
		user.IsVolunteer = *req.IsVolunteer
	}
	if req.VolunteerSkills != nil {
		user.VolunteerSkills = *req.VolunteerSkills
	}
	if req.VolunteerAvailability != nil {
		user.VolunteerAvailability = *req.VolunteerAvailability
	}
	if req.DeviceToken != nil {
		user.DeviceToken = *req.DeviceToken
	}

	return us.save(ctx, user)
}

func (us *UserService) save(ctx context.Context, user *models.User) (*models.User, error) {
	user.UpdatedAt = time.Now()
	if err := us.userRepo.Update(ctx, user); err != nil {
		return nil, utils.FromRepositoryError(err, "User", "update user")
	}
	return user, nil
}
