package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Base — общие поля для всех таблиц
type Base struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enquiry — таблица enquiries, заявки с формы контактов
type Enquiry struct {
	Base
	Name    string `gorm:"not null"`
	Email   string `gorm:"index;not null"`
	Phone   string
	Subject string
	Message string `gorm:"type:text;not null"`
}

// HashPassword превращает обычный пароль в безопасный хэш
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword проверяет пароль на совпадение с хэшем
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
