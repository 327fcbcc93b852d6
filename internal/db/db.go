package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// Open открывает соединение с БД по DB_DSN и мигрирует таблицу заявок
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is empty (check your .env)")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := db.AutoMigrate(&models.Enquiry{}); err != nil {
		return nil, fmt.Errorf("migrate enquiries: %w", err)
	}
	return db, nil
}

// EnquiryStore — заявки с формы контактов
type EnquiryStore struct {
	db *gorm.DB
}

func NewEnquiryStore(db *gorm.DB) *EnquiryStore {
	return &EnquiryStore{db: db}
}

func (s *EnquiryStore) Create(ctx context.Context, e *models.Enquiry) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create enquiry: %w", err)
	}
	return nil
}

// Recent — последние заявки, новые сверху
func (s *EnquiryStore) Recent(ctx context.Context, limit int) ([]models.Enquiry, error) {
	var items []models.Enquiry
	if err := s.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	return items, nil
}

// Ping используется /health
func (s *EnquiryStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
