package service

import (
	"errors"
	"testing"

	"github.com/tutormatch/tutormatch/database"
)

func TestUserAdminService(t *testing.T) {
	setupDB(t)
	users := UserService{}
	admin := NewUserAdminService()

	lea, err := users.Register("lea", "pw", "learner")
	if err != nil {
		t.Fatal(err)
	}

	list, err := admin.ListUsers()
	if err != nil || len(list) != 2 {
		t.Fatalf("ListUsers = %v, %v", list, err)
	}

	dto, err := admin.UpdateUserRole(lea.Id, "tutor")
	if err != nil || dto.Role != "tutor" {
		t.Fatalf("UpdateUserRole = %+v, %v", dto, err)
	}
	if _, err := admin.UpdateUserRole(lea.Id, "reader"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("invalid role err = %v", err)
	}

	if err := admin.ResetPassword(lea.Id, "new-pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := users.CheckUser("lea", "new-pw"); err != nil {
		t.Errorf("login with reset password: %v", err)
	}

	if err := admin.DeleteUser(lea.Id); err != nil {
		t.Fatal(err)
	}
	if _, err := users.CheckUser("lea", "new-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("deleted user still logs in: %v", err)
	}
	if err := admin.DeleteUser(lea.Id); !database.IsNotFound(err) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestLastAdminIsProtected(t *testing.T) {
	setupDB(t)
	admin := NewUserAdminService()
	list, _ := admin.ListUsers()
	rootId := list[0].Id

	if err := admin.DeleteUser(rootId); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("delete last admin err = %v", err)
	}
	if _, err := admin.UpdateUserRole(rootId, "learner"); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("demote last admin err = %v", err)
	}

	users := UserService{}
	second, err := users.AddUser("root2", "pw", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := admin.UpdateUserRole(rootId, "learner"); err != nil {
		t.Errorf("demote with another admin: %v", err)
	}
	if err := admin.DeleteUser(second.Id); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("delete remaining admin err = %v", err)
	}
}
