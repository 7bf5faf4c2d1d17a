package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tele1/storefront/internal/domain"
)

func TestListUsers_SuperAdminOnlyAndPasswordsStripped(t *testing.T) {
	users := new(MockUserRepo)
	uc := &AdminUC{Users: users, Cache: &recordingCache{}}

	assert.Empty(t, uc.ListUsers(context.Background(), limitedSession()))

	users.On("List", mock.Anything).Return([]domain.User{
		{Username: "a", Password: "hash-a"},
		{Username: "b", Password: "hash-b"},
	}, nil)

	list := uc.ListUsers(context.Background(), superAdminSession())
	require.Len(t, list, 2)
	for _, u := range list {
		assert.Empty(t, u.Password)
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	users := new(MockUserRepo)
	uc := &AdminUC{Users: users, Cache: &recordingCache{}}

	var stored *domain.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.User)
	}).Return(nil)

	res := uc.CreateUser(context.Background(), superAdminSession(), &domain.User{
		Username: "staff", Password: "hunter22",
	})

	require.True(t, res.Success)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
	assert.Equal(t, domain.RoleAdmin, stored.Role)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	users := new(MockUserRepo)
	uc := &AdminUC{Users: users, Cache: &recordingCache{}}

	users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	res := uc.CreateUser(context.Background(), superAdminSession(), &domain.User{
		Username: "staff", Password: "x",
	})

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrUsernameExists, res.Error)
}

func TestDeleteUser_CannotDeleteSelf(t *testing.T) {
	users := new(MockUserRepo)
	uc := &AdminUC{Users: users, Cache: &recordingCache{}}

	sess := superAdminSession()
	res := uc.DeleteUser(context.Background(), sess, sess.UserID)

	assert.False(t, res.Success)
	users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateAdminCredentials(t *testing.T) {
	users := new(MockUserRepo)
	uc := &AdminUC{Users: users, Cache: &recordingCache{}}

	sess := superAdminSession()
	hash, _ := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.DefaultCost)
	stored := &domain.User{ID: sess.UserID, Username: "root", Password: string(hash), Role: domain.RoleSuperAdmin}

	users.On("FindByID", mock.Anything, sess.UserID).Return(stored, nil)

	res := uc.UpdateAdminCredentials(context.Background(), sess, "wrong-pass", "newname", "")
	assert.Equal(t, domain.ErrWrongPassword, res.Error)

	res = uc.UpdateAdminCredentials(context.Background(), sess, "current-pass", "", "")
	assert.Equal(t, domain.ErrNoChanges, res.Error)

	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "newname"
	})).Return(nil)
	res = uc.UpdateAdminCredentials(context.Background(), sess, "current-pass", "newname", "")
	assert.True(t, res.Success)
}

func TestUpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	users := new(MockUserRepo)
	uc := &AdminUC{Users: users, Cache: &recordingCache{}}

	id := uuid.New()
	users.On("FindByID", mock.Anything, id).Return(&domain.User{ID: id, Password: "old-hash"}, nil)

	var updated *domain.User
	users.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*domain.User)
	}).Return(nil)

	res := uc.UpdateUser(context.Background(), superAdminSession(), &domain.User{
		ID: id, Username: "staff", CanManageProducts: true,
	})

	require.True(t, res.Success)
	assert.Equal(t, "old-hash", updated.Password)
}
