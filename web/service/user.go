// Package service holds the account operations behind the login and signup flows.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tutormatch/tutormatch/database"
	"github.com/tutormatch/tutormatch/database/model"
	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/util/crypto"
	"github.com/tutormatch/tutormatch/web/session"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyUsername      = errors.New("empty username")
)

type UserService struct{}

// Register creates a learner or tutor account. Admin accounts cannot be
// created through signup.
func (s *UserService) Register(username string, password string, role string) (*model.User, error) {
	r := session.ParseRole(role)
	if r != session.RoleLearner && r != session.RoleTutor {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return s.AddUser(username, password, role)
}

// AddUser creates an account with any known role.
func (s *UserService) AddUser(username string, password string, role string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	r := session.ParseRole(role)
	if r == session.RoleNone {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	db := database.GetDB()
	var count int64
	if err := db.Model(model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, username)
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		PublicId:     uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         r.String(),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	logger.Infof("registered %s account %s", user.Role, user.Username)
	return user, nil
}

// CheckUser returns the user when the credentials match.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]model.User, error) {
	db := database.GetDB()
	var users []model.User
	err := db.Model(model.User{}).Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) GetUserByPublicId(publicId string) (*model.User, error) {
	if _, err := uuid.Parse(publicId); err != nil {
		return nil, fmt.Errorf("invalid public id %q: %w", publicId, err)
	}
	db := database.GetDB()
	user := &model.User{}
	if err := db.Where("public_id = ?", publicId).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SessionUser converts a stored account to the identity kept in the session.
func SessionUser(u *model.User) *session.User {
	if u == nil {
		return nil
	}
	return &session.User{
		Id:       u.Id,
		PublicId: u.PublicId,
		Username: u.Username,
		Role:     u.Role,
	}
}
