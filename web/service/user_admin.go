package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tutormatch/tutormatch/database"
	"github.com/tutormatch/tutormatch/database/model"
	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/util/crypto"
	"github.com/tutormatch/tutormatch/web/session"
)

// ErrLastAdmin prevents removing the only admin account.
var ErrLastAdmin = errors.New("cannot remove the last admin")

// UserAdminService backs the admin account endpoints.
type UserAdminService struct {
	DB *gorm.DB
}

func NewUserAdminService() *UserAdminService {
	return &UserAdminService{DB: database.GetDB()}
}

type UserDTO struct {
	Id       int    `json:"id"`
	PublicId string `json:"publicId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toDTO(u *model.User) UserDTO {
	return UserDTO{Id: u.Id, PublicId: u.PublicId, Username: u.Username, Role: u.Role}
}

func (s *UserAdminService) ListUsers() ([]UserDTO, error) {
	var users []model.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toDTO(&users[i]))
	}
	return out, nil
}

func (s *UserAdminService) UpdateUserRole(id int, newRole string) (UserDTO, error) {
	role := session.ParseRole(newRole)
	if role == session.RoleNone {
		return UserDTO{}, fmt.Errorf("%w: %q", ErrInvalidRole, newRole)
	}
	var u model.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return UserDTO{}, err
	}
	if u.Role == model.RoleAdmin && role != session.RoleAdmin {
		if err := s.ensureAnotherAdmin(u.Id); err != nil {
			return UserDTO{}, err
		}
	}
	u.Role = role.String()
	if err := s.DB.Save(&u).Error; err != nil {
		return UserDTO{}, err
	}
	logger.Infof("user %s is now %s", u.Username, u.Role)
	return toDTO(&u), nil
}

func (s *UserAdminService) ResetPassword(id int, newPassword string) error {
	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	var u model.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.DB.Save(&u).Error
}

func (s *UserAdminService) DeleteUser(id int) error {
	var u model.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return err
	}
	if u.Role == model.RoleAdmin {
		if err := s.ensureAnotherAdmin(u.Id); err != nil {
			return err
		}
	}
	return s.DB.Delete(&model.User{}, id).Error
}

func (s *UserAdminService) ensureAnotherAdmin(exceptId int) error {
	var count int64
	err := s.DB.Model(&model.User{}).
		Where("role = ? AND id <> ?", model.RoleAdmin, exceptId).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrLastAdmin
	}
	return nil
}
