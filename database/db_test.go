package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tutormatch/tutormatch/database/model"
	"github.com/tutormatch/tutormatch/util/crypto"
)

func TestInitDBSeedsAdmin(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db", "tutormatch.db")
	if err := InitDB(dbPath); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = CloseDB() })

	var users []model.User
	if err := GetDB().Find(&users).Error; err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	admin := users[0]
	if admin.Username != "admin" || admin.Role != model.RoleAdmin {
		t.Errorf("unexpected seed user %+v", admin)
	}
	if admin.PublicId == "" {
		t.Error("seed user has no public id")
	}
	if !crypto.CheckPasswordHash(admin.PasswordHash, "admin") {
		t.Error("seed password not hashed with bcrypt")
	}

	if err := Checkpoint(); err != nil {
		t.Errorf("Checkpoint: %v", err)
	}

	f, err := os.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	ok, err := IsSQLiteDB(f)
	if err != nil || !ok {
		t.Errorf("IsSQLiteDB = %v, %v", ok, err)
	}
}

func TestInitDBDoesNotReseed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tutormatch.db")
	if err := InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
	if err := CloseDB(); err != nil {
		t.Fatal(err)
	}
	if err := InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = CloseDB() })

	var count int64
	GetDB().Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestCheckpointWithoutDB(t *testing.T) {
	if GetDB() != nil {
		t.Skip("database already open")
	}
	if err := Checkpoint(); err == nil {
		t.Error("expected error without database")
	}
}

func TestInitDBRejectsForeignFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "notes.db")
	if err := os.WriteFile(dbPath, []byte("this is not sqlite"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := InitDB(dbPath); err == nil {
		_ = CloseDB()
		t.Fatal("InitDB accepted a non-SQLite file")
	}
}
