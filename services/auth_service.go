package services

import (
	"context"
	"strings"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/repositories"
	"github.com/Goutam363/ewabeyapi/utils"
)

// AuthService manages the three principal kinds. Each kind has its own store
// and its own uniqueness domain; a username may exist once per kind.
type AuthService struct {
	users  UserStore
	staffs StaffStore
	admins AdminStore
}

func NewAuthService() *AuthService {
	return &AuthService{
		users:  repositories.NewUserRepository(),
		staffs: repositories.NewStaffRepository(),
		admins: repositories.NewAdminRepository(),
	}
}

func NewAuthServiceWithStores(users UserStore, staffs StaffStore, admins AdminStore) *AuthService {
	return &AuthService{users: users, staffs: staffs, admins: admins}
}

// User section

func (s *AuthService) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Dob:           req.Dob,
		Username:      req.Username,
		Password:      hashedPassword,
		AccountStatus: models.AccountActive,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return translateInsertError(err)
	}
	return nil
}

func (s *AuthService) SignInUser(ctx context.Context, req models.SignInRequest) (string, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if isNoRows(err) {
			return "", apperrors.Unauthorized("Please check your login credentials")
		}
		return "", apperrors.Internal("Failed to load user", err)
	}
	if ok, _ := utils.VerifyPassword(user.Password, req.Password); !ok {
		return "", apperrors.Unauthorized("Please check your login credentials")
	}
	if user.AccountStatus != models.AccountActive {
		return "", apperrors.Unauthorized("Admin blocked/deactivated your account")
	}
	token, err := utils.GenerateToken(user.Username, utils.RoleUser)
	if err != nil {
		return "", apperrors.Internal("Failed to sign token", err)
	}
	return token, nil
}

func (s *AuthService) GetProfileByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Username does not exist!")
		}
		return nil, apperrors.Internal("Failed to load profile", err)
	}
	return &models.UserProfile{
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Mobile:   user.Mobile,
		Dob:      user.Dob,
	}, nil
}

func (s *AuthService) CheckUsername(ctx context.Context, username string) bool {
	_, err := s.users.FindByUsername(ctx, username)
	return err == nil
}

func (s *AuthService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list users", err)
	}
	return users, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("User with id " + id + " not found")
		}
		return nil, apperrors.Internal("Failed to load user", err)
	}
	return user, nil
}

// GetUsernamesByEmail joins every username registered under the email with
// '|'; empty string when none.
func (s *AuthService) GetUsernamesByEmail(ctx context.Context, email string) (string, error) {
	users, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.Internal("Failed to look up usernames", err)
	}
	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}
	return strings.Join(usernames, "|"), nil
}

// UpdatePassword is the reset path: the username must belong to the set of
// usernames registered under the given email, otherwise Unauthorized.
func (s *AuthService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	usernames, err := s.GetUsernamesByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if usernames == "" {
		return apperrors.Unauthorized("No account registered under this email")
	}

	matched := false
	for _, username := range strings.Split(usernames, "|") {
		if username == req.Username {
			matched = true
			break
		}
	}
	if !matched {
		return apperrors.Unauthorized("Username does not belong to this email")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, req.Username, hashedPassword); err != nil {
		return apperrors.Internal("Failed to update password", err)
	}
	return nil
}

func (s *AuthService) UpdateUserByStaff(ctx context.Context, id string, req models.UpdateUserByStaffRequest) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Mobile = req.Mobile
	user.Dob = req.Dob
	user.AccountStatus = req.AccountStatus
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to update user", err)
	}
	return user, nil
}

func (s *AuthService) UpdateUserByAdmin(ctx context.Context, id string, req models.UpdateUserByAdminRequest) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = req.Name
	user.Email = req.Email
	user.Mobile = req.Mobile
	user.Dob = req.Dob
	user.Username = req.Username
	user.AccountStatus = req.AccountStatus
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to update user", err)
	}
	return user, nil
}

// Staff section

func (s *AuthService) CreateStaff(ctx context.Context, req models.CreateStaffRequest) error {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	staff := &models.Staff{
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Dob:           req.Dob,
		Username:      req.Username,
		Password:      hashedPassword,
		StaffDetails:  req.StaffDetails,
		AccountStatus: models.AccountActive,
	}
	if err := s.staffs.Insert(ctx, staff); err != nil {
		return translateInsertError(err)
	}
	return nil
}

func (s *AuthService) SignInStaff(ctx context.Context, req models.SignInRequest) (string, error) {
	staff, err := s.staffs.FindByUsername(ctx, req.Username)
	if err != nil {
		if isNoRows(err) {
			return "", apperrors.Unauthorized("Please check your login credentials")
		}
		return "", apperrors.Internal("Failed to load staff", err)
	}
	if ok, _ := utils.VerifyPassword(staff.Password, req.Password); !ok {
		return "", apperrors.Unauthorized("Please check your login credentials")
	}
	if staff.AccountStatus != models.AccountActive {
		return "", apperrors.Unauthorized("Admin blocked/deactivated your account")
	}
	token, err := utils.GenerateToken(staff.Username, utils.RoleStaff)
	if err != nil {
		return "", apperrors.Internal("Failed to sign token", err)
	}
	return token, nil
}

func (s *AuthService) CheckUsernameStaff(ctx context.Context, username string) bool {
	_, err := s.staffs.FindByUsername(ctx, username)
	return err == nil
}

func (s *AuthService) GetAllStaffs(ctx context.Context) ([]models.Staff, error) {
	staffs, err := s.staffs.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list staffs", err)
	}
	return staffs, nil
}

func (s *AuthService) GetStaffByID(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.staffs.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Staff with id " + id + " not found")
		}
		return nil, apperrors.Internal("Failed to load staff", err)
	}
	return staff, nil
}

func (s *AuthService) VerifyStaffByID(ctx context.Context, id string) bool {
	_, err := s.staffs.FindByID(ctx, id)
	return err == nil
}

func (s *AuthService) UpdateStaffByAdmin(ctx context.Context, id string, req models.UpdateStaffByAdminRequest) (*models.Staff, error) {
	staff, err := s.GetStaffByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff.Name = req.Name
	staff.Email = req.Email
	staff.Mobile = req.Mobile
	staff.Dob = req.Dob
	staff.Username = req.Username
	staff.AccountStatus = req.AccountStatus
	staff.StaffDetails = req.StaffDetails
	if err := s.staffs.Update(ctx, staff); err != nil {
		return nil, apperrors.Internal("Failed to update staff", err)
	}
	return staff, nil
}

// UpdateStaffDetails writes the document URL produced by an upload.
func (s *AuthService) UpdateStaffDetails(ctx context.Context, id, staffDetails string) (*models.Staff, error) {
	staff, err := s.GetStaffByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff.StaffDetails = staffDetails
	if err := s.staffs.Update(ctx, staff); err != nil {
		return nil, apperrors.Internal("Failed to update staff", err)
	}
	return staff, nil
}

// Admin section

func (s *AuthService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) error {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	admin := &models.Admin{
		Name:          req.Name,
		Email:         req.Email,
		Username:      req.Username,
		Password:      hashedPassword,
		AdminDetails:  req.AdminDetails,
		AccountStatus: models.AccountActive,
	}
	if err := s.admins.Insert(ctx, admin); err != nil {
		return translateInsertError(err)
	}
	return nil
}

func (s *AuthService) SignInAdmin(ctx context.Context, req models.SignInRequest) (string, error) {
	admin, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		if isNoRows(err) {
			return "", apperrors.Unauthorized("Please check your login credentials")
		}
		return "", apperrors.Internal("Failed to load admin", err)
	}
	if ok, _ := utils.VerifyPassword(admin.Password, req.Password); !ok {
		return "", apperrors.Unauthorized("Please check your login credentials")
	}
	if admin.AccountStatus != models.AccountActive {
		return "", apperrors.Unauthorized("Admin blocked/deactivated your account")
	}
	token, err := utils.GenerateToken(admin.Username, utils.RoleAdmin)
	if err != nil {
		return "", apperrors.Internal("Failed to sign token", err)
	}
	return token, nil
}

func (s *AuthService) CheckUsernameAdmin(ctx context.Context, username string) bool {
	_, err := s.admins.FindByUsername(ctx, username)
	return err == nil
}

func (s *AuthService) GetAllAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.admins.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list admins", err)
	}
	return admins, nil
}

func (s *AuthService) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Admin with id " + id + " not found")
		}
		return nil, apperrors.Internal("Failed to load admin", err)
	}
	return admin, nil
}

func (s *AuthService) VerifyAdminByID(ctx context.Context, id string) bool {
	_, err := s.admins.FindByID(ctx, id)
	return err == nil
}

func (s *AuthService) UpdateAdminByAdmin(ctx context.Context, id string, req models.UpdateAdminByAdminRequest) (*models.Admin, error) {
	admin, err := s.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	admin.Name = req.Name
	admin.Email = req.Email
	admin.Username = req.Username
	admin.AccountStatus = req.AccountStatus
	admin.AdminDetails = req.AdminDetails
	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, apperrors.Internal("Failed to update admin", err)
	}
	return admin, nil
}

func (s *AuthService) UpdateAdminDetails(ctx context.Context, id, adminDetails string) (*models.Admin, error) {
	admin, err := s.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	admin.AdminDetails = adminDetails
	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, apperrors.Internal("Failed to update admin", err)
	}
	return admin, nil
}

func (s *AuthService) DeleteAdmin(ctx context.Context, id string) error {
	affected, err := s.admins.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal("Failed to delete admin", err)
	}
	if affected == 0 {
		return apperrors.NotFound("Admin with id \"" + id + "\" not found")
	}
	return nil
}
