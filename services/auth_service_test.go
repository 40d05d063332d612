package services

import (
	"alertsystem/models"
	"alertsystem/utils"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	serviceSuite
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) signup(email string) *models.User {
	user, err := s.auth.Signup(s.ctx, models.SignupRequest{
		Name:        "Asha",
		Email:       email,
		Password:    "secret123",
		District:    "Mysuru",
		State:       "Karnataka",
		Role:        "ROLE_ADMIN",
		IsVolunteer: true,
	})
	s.Require().NoError(err)
	return user
}

func (s *AuthServiceSuite) TestSignupIgnoresRole() {
	user := s.signup("asha@example.com")
	s.Equal(models.RoleCitizen, user.Role)
	s.True(user.IsVolunteer)
	s.NotEqual("secret123", user.Password)

	_, err := s.auth.Signup(s.ctx, models.SignupRequest{Name: "Asha", Email: "ASHA@example.com", Password: "secret123"})
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
	s.Contains(err.Error(), "Email is already in use!")
}

func (s *AuthServiceSuite) TestSignupValidation() {
	_, err := s.auth.Signup(s.ctx, models.SignupRequest{Name: "A", Email: "bad", Password: "1"})
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
}

func (s *AuthServiceSuite) TestSigninAndAuthenticate() {
	user := s.signup("asha@example.com")

	_, err := s.auth.Signin(s.ctx, models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	s.requireErrorCode(err, utils.ErrCodeAuthentication, http.StatusUnauthorized)

	resp, err := s.auth.Signin(s.ctx, models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	s.Require().NoError(err)
	s.Equal("Bearer", resp.Type)
	s.Equal([]string{"ROLE_CITIZEN"}, resp.Roles)
	s.Equal("Mysuru", resp.District)

	authed, claims, err := s.auth.Authenticate(s.ctx, resp.Token)
	s.Require().NoError(err)
	s.Equal(user.ID, authed.ID)

	s.Require().NoError(s.auth.Signout(s.ctx, claims))
	_, _, err = s.auth.Authenticate(s.ctx, resp.Token)
	s.requireErrorCode(err, utils.ErrCodeAuthentication, http.StatusUnauthorized)
}

func (s *AuthServiceSuite) TestDeactivatedOfficerCannotSignIn() {
	officer, message, err := s.users.CreateOfficer(s.ctx, s.admin, models.CreateOfficerRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "officer1",
		District: "Mysuru",
	})
	s.Require().NoError(err)
	s.Equal("Officer created successfully! Email: ravi@example.com | Password has been set. Officer can login immediately.", message)
	s.Equal(models.OfficerActive, officer.Status)
	s.Require().NotNil(officer.AssignedAdminID)
	s.Equal(s.admin.ID, *officer.AssignedAdminID)

	s.Require().NoError(s.users.SetOfficerActive(s.ctx, officer.ID.Hex(), false))

	_, err = s.auth.Signin(s.ctx, models.LoginRequest{Email: "ravi@example.com", Password: "officer1"})
	s.requireErrorCode(err, utils.ErrCodeAuthentication, http.StatusUnauthorized)
}

func (s *AuthServiceSuite) TestCreateOfficerGeneratesPassword() {
	_, message, err := s.users.CreateOfficer(s.ctx, s.admin, models.CreateOfficerRequest{
		Name:  "Meera",
		Email: "meera@example.com",
	})
	s.Require().NoError(err)
	s.Equal("Officer created successfully! Email: meera@example.com", message)

	officers, err := s.users.ListOfficersByAdmin(s.ctx, s.admin.ID.Hex())
	s.Require().NoError(err)
	s.Len(officers, 1)
}

func (s *AuthServiceSuite) TestVolunteers() {
	s.signup("asha@example.com")

	count, err := s.users.CountVolunteersByDistrict(s.ctx, "Mysuru")
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	skills := "First aid"
	updated, err := s.users.UpdateVolunteerProfile(s.ctx, s.citizen.ID.Hex(), models.UpdateVolunteerRequest{
		IsVolunteer:     boolPtr(true),
		VolunteerSkills: &skills,
	})
	s.Require().NoError(err)
	s.True(updated.IsVolunteer)
	s.Equal("First aid", updated.VolunteerSkills)

	total, err := s.users.CountAllVolunteers(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func boolPtr(v bool) *bool { return &v }
