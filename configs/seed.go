package configs

import (
	"log/slog"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"golang.org/x/crypto/bcrypt"
)

// Seed the three role groups the permission checks rely on.
func SeedGroups() error {
	db := DB()
	for _, name := range []string{entity.GroupManager, entity.GroupCustomer, entity.GroupDeliveryCrew} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}
	slog.Info("role groups seeded")
	return nil
}

// Create the first manager account from env, once.
func SeedManager() error {
	db := DB()
	username := getEnv("MANAGER_USERNAME", "")
	pass := getEnv("MANAGER_PASSWORD", "")
	if username == "" || pass == "" {
		slog.Warn("skip seeding manager: missing MANAGER_USERNAME/MANAGER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		slog.Info("manager already exists", "username", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	manager := entity.User{
		Username: username,
		Email:    getEnv("MANAGER_EMAIL", ""),
		Password: string(hash),
	}
	if err := db.Create(&manager).Error; err != nil {
		return err
	}

	var group entity.Group
	if err := db.Where("name = ?", entity.GroupManager).First(&group).Error; err != nil {
		return err
	}
	return db.Model(&manager).Association("Groups").Append(&group)
}
