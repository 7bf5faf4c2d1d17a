package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/tele1/storefront/internal/domain"
)

// User management is the super admin's alone; the capability flags do not
// reach this far.

func (uc *AdminUC) ListUsers(ctx context.Context, s domain.Session) []domain.User {
	if s.Role != domain.RoleSuperAdmin {
		return []domain.User{}
	}
	list, err := uc.Users.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list users")
		return []domain.User{}
	}
	for i := range list {
		list[i].Password = ""
	}
	return list
}

func (uc *AdminUC) CreateUser(ctx context.Context, s domain.Session, u *domain.User) domain.Result {
	if s.Role != domain.RoleSuperAdmin {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if u == nil || strings.TrimSpace(u.Username) == "" || u.Password == "" {
		return domain.Fail(domain.ErrCreateUser)
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = domain.RoleAdmin
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("hash password")
		return domain.Fail(domain.ErrCreateUser)
	}
	u.Password = string(hash)
	if err := uc.Users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Fail(domain.ErrUsernameExists)
		}
		log.Error().Err(err).Msg("create user")
		return domain.Fail(domain.ErrCreateUser)
	}
	uc.Cache.Invalidate("/admin/users")
	return domain.OK()
}

// UpdateUser changes role and capability flags; a non-empty password is
// re-hashed, an empty one keeps the stored hash.
func (uc *AdminUC) UpdateUser(ctx context.Context, s domain.Session, u *domain.User) domain.Result {
	if s.Role != domain.RoleSuperAdmin {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if u == nil || u.ID == uuid.Nil {
		return domain.Fail(domain.ErrUpdateUser)
	}
	current, err := uc.Users.FindByID(ctx, u.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(domain.ErrUpdateUser)
		}
		log.Error().Err(err).Msg("update user lookup")
		return domain.Fail(domain.ErrUpdateUser)
	}
	if u.Password == "" {
		u.Password = current.Password
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("hash password")
			return domain.Fail(domain.ErrUpdateUser)
		}
		u.Password = string(hash)
	}
	if err := uc.Users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Fail(domain.ErrUsernameExists)
		}
		log.Error().Err(err).Msg("update user")
		return domain.Fail(domain.ErrUpdateUser)
	}
	uc.Cache.Invalidate("/admin/users")
	return domain.OK()
}

func (uc *AdminUC) DeleteUser(ctx context.Context, s domain.Session, id uuid.UUID) domain.Result {
	if s.Role != domain.RoleSuperAdmin {
		return domain.Fail(domain.ErrUnauthorized)
	}
	if id == s.UserID {
		return domain.Fail(domain.ErrDeleteUser)
	}
	if err := uc.Users.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("delete user")
		return domain.Fail(domain.ErrDeleteUser)
	}
	uc.Cache.Invalidate("/admin/users")
	return domain.OK()
}

// UpdateAdminCredentials rotates the caller's own username and password. The
// current password must verify against the stored hash first.
func (uc *AdminUC) UpdateAdminCredentials(ctx context.Context, s domain.Session, currentPassword, newUsername, newPassword string) domain.Result {
	if !isAdmin(s) {
		return domain.Fail(domain.ErrUnauthorized)
	}
	u, err := uc.Users.FindByID(ctx, s.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(domain.ErrAdminNotFound)
		}
		log.Error().Err(err).Msg("credentials lookup")
		return domain.Fail(domain.ErrUpdateCredential)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)) != nil {
		return domain.Fail(domain.ErrWrongPassword)
	}
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" && newPassword == "" {
		return domain.Fail(domain.ErrNoChanges)
	}
	if newUsername != "" {
		u.Username = newUsername
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("hash password")
			return domain.Fail(domain.ErrUpdateCredential)
		}
		u.Password = string(hash)
	}
	if err := uc.Users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Fail(domain.ErrUsernameExists)
		}
		log.Error().Err(err).Msg("update credentials")
		return domain.Fail(domain.ErrUpdateCredential)
	}
	return domain.OK()
}
