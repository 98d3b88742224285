// Package database manages the SQLite database lifecycle and provides the
// persistent Store implementation.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"edupanel/config"
	"edupanel/database/model"
	"edupanel/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
		&model.Student{},
		&model.AdmissionForm{},
		&model.ActivityLog{},
		&model.PendingStudent{},
		&model.ApprovedStudent{},
		&model.PendingEmployee{},
		&model.ApprovedEmployee{},
		&model.Admin{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUser seeds a default admin account when both the panel user table and
// the approval admin table are empty, so a fresh install is reachable.
func initUser() error {
	username, password := config.GetDefaultCredentials()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	empty, err := isTableEmpty("users")
	if err != nil {
		return err
	}
	if empty {
		user := &model.User{
			Username:     username,
			PasswordHash: hash,
			Email:        username + "@example.com",
			FullName:     "Admin User",
			Role:         model.RoleAdmin,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
	}

	empty, err = isTableEmpty("admins")
	if err != nil {
		return err
	}
	if empty {
		admin := &model.Admin{
			Name:     "Admin User",
			Email:    username + "@example.com",
			Password: hash,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
	}
	return nil
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

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initUser(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
