package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Company — реквизиты, которые выводятся в шапке и подвале
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Social — ссылки на соцсети
type Social struct {
	Facebook  string
	Twitter   string
	Instagram string
	YouTube   string
}

// CMS — настройки подключения к Strapi. Пустой BaseURL отключает CMS целиком.
type CMS struct {
	BaseURL            string
	AdminURL           string
	Token              string
	ProductsCollection string
	HomeCollection     string
	GalleryCollection  string
	Timeout            time.Duration
}

// Config собирается один раз при старте и дальше только читается.
type Config struct {
	Port          string
	SessionSecret string
	LogLevel      string
	ContentDir    string
	StaticDir     string
	ContentFile   string
	DSN           string
	AdminHash     string

	CMS     CMS
	Company Company
	Social  Social
}

const (
	defaultPort          = "8080"
	defaultSessionSecret = "dev_fallback_secret"
	defaultTimeout       = 8 * time.Second
)

// FromEnv читает переменные окружения (после godotenv.Overload в main).
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          envOr("APP_PORT", defaultPort),
		SessionSecret: envOr("SESSION_SECRET", defaultSessionSecret),
		LogLevel:      strings.ToLower(envOr("LOG_LEVEL", "info")),
		ContentDir:    envOr("CONTENT_DIR", "content"),
		StaticDir:     envOr("STATIC_DIR", "static"),
		ContentFile:   envOr("CONTENT_FILE", "content.json"),
		DSN:           strings.TrimSpace(os.Getenv("DB_DSN")),
		AdminHash:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		Company: Company{
			Name:    envOr("COMPANY_NAME", "ABC Apparel"),
			Address: os.Getenv("COMPANY_ADDRESS"),
			Phone:   os.Getenv("COMPANY_PHONE"),
			Email:   os.Getenv("COMPANY_EMAIL"),
		},
		Social: Social{
			Facebook:  os.Getenv("FACEBOOK_URL"),
			Twitter:   os.Getenv("TWITTER_URL"),
			Instagram: os.Getenv("INSTAGRAM_URL"),
			YouTube:   os.Getenv("YOUTUBE_URL"),
		},
	}

	cms := CMS{
		BaseURL:            strings.TrimRight(strings.TrimSpace(os.Getenv("STRAPI_URL")), "/"),
		AdminURL:           strings.TrimSpace(os.Getenv("STRAPI_ADMIN_URL")),
		Token:              strings.TrimSpace(os.Getenv("STRAPI_API_TOKEN")),
		ProductsCollection: collection("STRAPI_PRODUCTS_COLLECTION", "products"),
		HomeCollection:     collection("STRAPI_HOME_COLLECTION", "homepages"),
		GalleryCollection:  collection("STRAPI_GALLERY_COLLECTION", "galleries"),
		Timeout:            defaultTimeout,
	}
	if raw := strings.TrimSpace(os.Getenv("STRAPI_TIMEOUT_SECONDS")); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("STRAPI_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cms.Timeout = time.Duration(secs) * time.Second
	}
	if cms.AdminURL == "" && cms.BaseURL != "" {
		cms.AdminURL = cms.BaseURL + "/admin"
	}
	cfg.CMS = cms
	return cfg, nil
}

// HasSessionSecret — false, если сессии подписаны общеизвестным ключом по умолчанию.
// На таком ключе любой может подделать cookie, поэтому админка выключается.
func (c Config) HasSessionSecret() bool {
	return c.SessionSecret != "" && c.SessionSecret != defaultSessionSecret
}

// Enabled сообщает, настроен ли адрес CMS.
func (c CMS) Enabled() bool { return c.BaseURL != "" }

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func collection(key, def string) string {
	v := strings.Trim(strings.TrimSpace(os.Getenv(key)), "/")
	if v == "" {
		return def
	}
	return v
}
