package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/utils"
)

type fakeUserStore struct {
	users   map[string]*models.User
	findErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.Username]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	user.ID = uuid.NewString()
	s.users[user.Username] = user
	return nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	user, ok := s.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) ([]models.User, error) {
	out := []models.User{}
	for _, user := range s.users {
		if user.Email == email {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (s *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, user := range s.users {
		out = append(out, *user)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	s.users[user.Username] = user
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, username, hashedPassword string) error {
	user, ok := s.users[username]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Password = hashedPassword
	return nil
}

type fakeStaffStore struct {
	staffs map[string]*models.Staff
}

func newFakeStaffStore() *fakeStaffStore {
	return &fakeStaffStore{staffs: map[string]*models.Staff{}}
}

func (s *fakeStaffStore) Insert(_ context.Context, staff *models.Staff) error {
	if _, ok := s.staffs[staff.Username]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	staff.ID = uuid.NewString()
	s.staffs[staff.Username] = staff
	return nil
}

func (s *fakeStaffStore) FindByUsername(_ context.Context, username string) (*models.Staff, error) {
	staff, ok := s.staffs[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return staff, nil
}

func (s *fakeStaffStore) FindByID(_ context.Context, id string) (*models.Staff, error) {
	for _, staff := range s.staffs {
		if staff.ID == id {
			return staff, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeStaffStore) FindAll(_ context.Context) ([]models.Staff, error) {
	out := []models.Staff{}
	for _, staff := range s.staffs {
		out = append(out, *staff)
	}
	return out, nil
}

func (s *fakeStaffStore) Update(_ context.Context, staff *models.Staff) error {
	s.staffs[staff.Username] = staff
	return nil
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: map[string]*models.Admin{}}
}

func (s *fakeAdminStore) Insert(_ context.Context, admin *models.Admin) error {
	if _, ok := s.admins[admin.Username]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	admin.ID = uuid.NewString()
	s.admins[admin.Username] = admin
	return nil
}

func (s *fakeAdminStore) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	admin, ok := s.admins[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (s *fakeAdminStore) FindByID(_ context.Context, id string) (*models.Admin, error) {
	for _, admin := range s.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeAdminStore) FindAll(_ context.Context) ([]models.Admin, error) {
	out := []models.Admin{}
	for _, admin := range s.admins {
		out = append(out, *admin)
	}
	return out, nil
}

func (s *fakeAdminStore) Update(_ context.Context, admin *models.Admin) error {
	s.admins[admin.Username] = admin
	return nil
}

func (s *fakeAdminStore) Delete(_ context.Context, id string) (int64, error) {
	for username, admin := range s.admins {
		if admin.ID == id {
			delete(s.admins, username)
			return 1, nil
		}
	}
	return 0, nil
}

func newTestAuthService() (*AuthService, *fakeUserStore, *fakeStaffStore, *fakeAdminStore) {
	users := newFakeUserStore()
	staffs := newFakeStaffStore()
	admins := newFakeAdminStore()
	return NewAuthServiceWithStores(users, staffs, admins), users, staffs, admins
}

func userRequest(username string) models.CreateUserRequest {
	return models.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Mobile:   "9876543210",
		Dob:      "1999-01-01",
		Username: username,
		Password: "s3cret-password",
	}
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))

	err := svc.CreateUser(ctx, userRequest("goutam"))
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
}

func TestUsernameSharedAcrossKinds(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, userRequest("shared")))
	require.NoError(t, svc.CreateStaff(ctx, models.CreateStaffRequest{
		Name: "Staff", Email: "staff@example.com", Mobile: "9000000000",
		Dob: "1995-05-05", Username: "shared", Password: "s3cret-password",
	}))
	require.NoError(t, svc.CreateAdmin(ctx, models.CreateAdminRequest{
		Name: "Admin", Email: "admin@example.com",
		Username: "shared", Password: "s3cret-password",
	}))

	assert.True(t, svc.CheckUsername(ctx, "shared"))
	assert.True(t, svc.CheckUsernameStaff(ctx, "shared"))
	assert.True(t, svc.CheckUsernameAdmin(ctx, "shared"))
}

func TestSignInUserWrongCredentials(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))

	_, err := svc.SignInUser(ctx, models.SignInRequest{Username: "nobody", Password: "whatever1"})
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	_, err = svc.SignInUser(ctx, models.SignInRequest{Username: "goutam", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestSignInUserStoreFailureIsInternal(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()
	users.findErr = errors.New("connection refused")

	_, err := svc.SignInUser(ctx, models.SignInRequest{Username: "goutam", Password: "s3cret-password"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
}

func TestSignInUserBlockedAccount(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))
	users.users["goutam"].AccountStatus = models.AccountBlocked

	_, err := svc.SignInUser(ctx, models.SignInRequest{Username: "goutam", Password: "s3cret-password"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
	assert.Equal(t, "Admin blocked/deactivated your account", apperrors.MessageOf(err))
}

func TestSignInUserIssuesRoleToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))

	token, err := svc.SignInUser(ctx, models.SignInRequest{Username: "goutam", Password: "s3cret-password"})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "goutam", claims.Username)
	assert.Equal(t, utils.RoleUser, claims.Role)
}

func TestGetUsernamesByEmailJoinsWithPipe(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	first := userRequest("first_acc")
	second := userRequest("second_acc")
	require.NoError(t, svc.CreateUser(ctx, first))
	require.NoError(t, svc.CreateUser(ctx, second))

	joined, err := svc.GetUsernamesByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first_acc", "second_acc"}, strings.Split(joined, "|"))

	joined, err = svc.GetUsernamesByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, "", joined)
}

func TestUpdatePasswordRequiresEmailOwnership(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))

	err := svc.UpdatePassword(ctx, models.UpdatePasswordRequest{
		Email: "other@example.com", Username: "goutam", Password: "new-password1",
	})
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	err = svc.UpdatePassword(ctx, models.UpdatePasswordRequest{
		Email: "test@example.com", Username: "someone_else", Password: "new-password1",
	})
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestUpdatePasswordRotatesHash(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))

	require.NoError(t, svc.UpdatePassword(ctx, models.UpdatePasswordRequest{
		Email: "test@example.com", Username: "goutam", Password: "new-password1",
	}))

	ok, err := utils.VerifyPassword(users.users["goutam"].Password, "new-password1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.SignInUser(ctx, models.SignInRequest{Username: "goutam", Password: "s3cret-password"})
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestDeleteAdmin(t *testing.T) {
	svc, _, _, admins := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateAdmin(ctx, models.CreateAdminRequest{
		Name: "Admin", Email: "admin@example.com", Username: "root", Password: "s3cret-password",
	}))
	id := admins.admins["root"].ID

	err := svc.DeleteAdmin(ctx, "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))

	require.NoError(t, svc.DeleteAdmin(ctx, id))
	assert.False(t, svc.CheckUsernameAdmin(ctx, "root"))
}

func TestGetProfileByUsername(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, userRequest("goutam")))

	profile, err := svc.GetProfileByUsername(ctx, "goutam")
	require.NoError(t, err)
	assert.Equal(t, "goutam", profile.Username)
	assert.Equal(t, "test@example.com", profile.Email)

	_, err = svc.GetProfileByUsername(ctx, "nobody")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestUpdateStaffDetailsWritesURL(t *testing.T) {
	svc, _, staffs, _ := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, svc.CreateStaff(ctx, models.CreateStaffRequest{
		Name: "Staff", Email: "staff@example.com", Mobile: "9000000000",
		Dob: "1995-05-05", Username: "staffer", Password: "s3cret-password",
	}))
	id := staffs.staffs["staffer"].ID

	staff, err := svc.UpdateStaffDetails(ctx, id, "https://cdn.example.com/staff.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/staff.pdf", staff.StaffDetails)
}
