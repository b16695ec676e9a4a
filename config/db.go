package config

import (
	"log"
	"time"

	"reweightapp/global"
	"reweightapp/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	dsn := AppConfig.Database.Dsn
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.Article{}, &models.Subscription{}, &models.Engagement{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	global.Db = db

	seedArticles(db)
}

// seedArticles 将静态文章目录写入数据库（按 slug 去重，已存在则跳过）
func seedArticles(db *gorm.DB) {
	for _, art := range models.ArticleCatalog {
		var count int64
		if err := db.Model(&models.Article{}).Where("slug = ?", art.Slug).Count(&count).Error; err != nil {
			log.Printf("seed: failed to check article %s: %v", art.Slug, err)
			continue
		}
		if count > 0 {
			continue
		}
		a := art
		if err := db.Create(&a).Error; err != nil {
			log.Printf("seed: failed to insert article %s: %v", art.Slug, err)
		}
	}
}
