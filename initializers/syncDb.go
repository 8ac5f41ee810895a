package initializers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Kariqs/storefront/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.SessionRecord{}); err != nil {
		return err
	}
	log.Info("database synced")
	return nil
}

// SeedProducts loads products from a JSON array file into an empty products
// table. It does nothing when the table already has rows.
func SeedProducts(db *gorm.DB, path string, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	if len(products) == 0 {
		return nil
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Info("products seeded", zap.Int("count", len(products)), zap.String("file", path))
	return nil
}
