package configs

import (
	"strings"

	"github.com/AGTechathon/Agriminds/entity"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account on first run. Admins cannot register through the API.
func SeedAdmin(database *gorm.DB, cfg *Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := database.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("admin already exists", zap.String("email", email))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	if err := database.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("admin seeded", zap.String("email", email))
	return nil
}
