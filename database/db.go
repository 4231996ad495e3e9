package database

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/tutormatch/tutormatch/config"
	"github.com/tutormatch/tutormatch/database/model"
	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultUsername = "admin"
	defaultPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.User{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			logger.Errorf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUser seeds the admin account when the users table is empty.
func initUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		logger.Errorf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(defaultPassword)
	if err != nil {
		return err
	}
	user := &model.User{
		PublicId:     uuid.NewString(),
		Username:     defaultUsername,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	logger.Notice("seeded default admin account")
	return db.Create(user).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	if err := checkExisting(dbPath); err != nil {
		return err
	}

	var gormLogger gormlogger.Interface

	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initUser()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(); err != nil {
		logger.Warningf("error executing checkpoint: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	err = sqlDB.Close()
	db = nil
	return err
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsSQLiteDB(file io.ReaderAt) (bool, error) {
	signature := []byte("SQLite format 3\x00")
	buf := make([]byte, len(signature))
	_, err := file.ReadAt(buf, 0)
	if err != nil {
		return false, err
	}
	return bytes.Equal(buf, signature), nil
}

// checkExisting refuses to open a non-empty file that is not a SQLite database.
func checkExisting(dbPath string) error {
	f, err := os.Open(dbPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() == 0 {
		return nil
	}
	ok, err := IsSQLiteDB(f)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if !ok {
		return fmt.Errorf("%s is not a SQLite database", dbPath)
	}
	return nil
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	if db == nil {
		return errors.New("database not initialized")
	}
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
