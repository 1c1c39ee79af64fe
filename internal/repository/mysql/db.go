package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = db
	return Migrate(db)
}

// Migrate creates/updates every collection; shared with the sqlite test setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Sermon{},
		&model.Event{},
		&model.Devotional{},
		&model.Testimonial{},
		&model.Donation{},
		&model.PrayerRequest{},
		&model.Member{},
		&model.Resource{},
	)
}

// Ping reports store reachability for the health endpoint.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
