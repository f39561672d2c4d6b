package database

import (
	"fmt"
	"time"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	gormConfig := &gorm.Config{}
	if cfg.Server.Mode == "release" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	} else {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Release deployments migrate on demand (-migrate / -migrate-only);
	// everything else migrates on every start.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := autoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		seedData(db)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Position{},
		&model.City{},
		&model.Institution{},
		&model.User{},
		&model.Category{},
		&model.Question{},
		&model.DailyQuiz{},
		&model.UserQuizAttempt{},
		&model.UserAnswer{},
		&model.Notification{},
		&model.Feedback{},
	)
}

// seedData inserts reference rows and a bootstrap admin account on a fresh
// database. Each block only runs when its table is empty.
func seedData(db *gorm.DB) {
	var positionCount int64
	db.Model(&model.Position{}).Count(&positionCount)
	if positionCount == 0 {
		positions := []model.Position{
			{Name: "Venue Administrator", Category: model.PositionVenueAdmin, Level: model.LevelJunior},
			{Name: "Senior Venue Administrator", Category: model.PositionVenueAdmin, Level: model.LevelSenior},
			{Name: "Banquet Manager", Category: model.PositionBanquetManager, Level: model.LevelMiddle},
			{Name: "Head Chef", Category: model.PositionHeadChef, Level: model.LevelManaging},
			{Name: "Liaison Manager", Category: model.PositionLiaisonManager, Level: model.LevelMiddle},
		}
		if err := db.Create(&positions).Error; err != nil {
			logger.Log.Warn("failed to seed positions", zap.Error(err))
		}
	}

	var categoryCount int64
	db.Model(&model.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		categories := []model.Category{
			{Name: "Service Standards", Description: "Guest service rules and etiquette"},
			{Name: "Food Safety", Description: "Hygiene, storage and handling regulations"},
			{Name: "Menu Knowledge", Description: "Dishes, ingredients and pairings"},
			{Name: "Operations", Description: "Daily venue operations and procedures"},
		}
		if err := db.Create(&categories).Error; err != nil {
			logger.Log.Warn("failed to seed categories", zap.Error(err))
		}
	}

	var cityCount int64
	db.Model(&model.City{}).Count(&cityCount)
	if cityCount == 0 {
		cities := []model.City{
			{Name: "Kyiv", Region: "Kyiv Oblast"},
			{Name: "Lviv", Region: "Lviv Oblast"},
			{Name: "Odesa", Region: "Odesa Oblast"},
		}
		if err := db.Create(&cities).Error; err != nil {
			logger.Log.Warn("failed to seed cities", zap.Error(err))
		}
	}

	var adminCount int64
	db.Model(&model.User{}).Where("is_admin = ?", true).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Warn("failed to hash bootstrap admin password", zap.Error(err))
			return
		}
		admin := model.User{
			FirstName:        "System",
			LastName:         "Administrator",
			Username:         "admin",
			PasswordHash:     string(hash),
			IsActive:         true,
			IsAdmin:          true,
			RegistrationDate: time.Now(),
		}
		if err := db.Create(&admin).Error; err != nil {
			logger.Log.Warn("failed to seed admin user", zap.Error(err))
		} else {
			logger.Log.Info("created bootstrap admin account", zap.String("username", admin.Username))
		}
	}
}
