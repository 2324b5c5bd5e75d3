// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailProvider() string
	GetSendGridAPIKey() string
	GetEmailFromAddress() string
	GetEmailOwnerAddress() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetNotifyTimeout() time.Duration
}

// BrandConfig provides shop branding and business facts used in replies
// and in outbound email templates.
type BrandConfig interface {
	GetBrandName() string
	GetBrandTag() string
	GetBrandPrimary() string
	GetLogoURL() string
	GetSiteURL() string
	GetAddress() string
	GetContactEmail() string
}

// LeadStoreConfig provides settings for the append-only lead store.
type LeadStoreConfig interface {
	GetLeadsCSVPath() string
}

// ChatConfig provides settings for the chat session store.
type ChatConfig interface {
	GetSessionTTL() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	EmailProvider     string
	SendGridAPIKey    string
	EmailFromAddress  string
	EmailOwnerAddress string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	NotifyTimeout     time.Duration
	BrandName         string
	BrandTag          string
	BrandPrimary      string
	LogoURL           string
	SiteURL           string
	Address           string
	ContactEmail      string
	LeadsCSVPath      string
	SessionTTL        time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// EmailConfig implementation
func (c *Config) GetEmailProvider() string        { return c.EmailProvider }
func (c *Config) GetSendGridAPIKey() string       { return c.SendGridAPIKey }
func (c *Config) GetEmailFromAddress() string     { return c.EmailFromAddress }
func (c *Config) GetEmailOwnerAddress() string    { return c.EmailOwnerAddress }
func (c *Config) GetSMTPHost() string             { return c.SMTPHost }
func (c *Config) GetSMTPPort() int                { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string         { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string         { return c.SMTPPassword }
func (c *Config) GetNotifyTimeout() time.Duration { return c.NotifyTimeout }

// BrandConfig implementation
func (c *Config) GetBrandName() string    { return c.BrandName }
func (c *Config) GetBrandTag() string     { return c.BrandTag }
func (c *Config) GetBrandPrimary() string { return c.BrandPrimary }
func (c *Config) GetLogoURL() string      { return c.LogoURL }
func (c *Config) GetSiteURL() string      { return c.SiteURL }
func (c *Config) GetAddress() string      { return c.Address }
func (c *Config) GetContactEmail() string { return c.ContactEmail }

// LeadStoreConfig implementation
func (c *Config) GetLeadsCSVPath() string { return c.LeadsCSVPath }

// ChatConfig implementation
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// Load reads configuration from environment variables.
// Branding and business facts default to the shop's canonical values so a
// bare environment still produces a working assistant; email credentials have
// no defaults and their absence is surfaced at send time, not hidden.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailFrom := getEnv("EMAIL_FROM", "")

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		EmailProvider:     strings.ToLower(getEnv("EMAIL_PROVIDER", "sendgrid")),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		EmailFromAddress:  emailFrom,
		EmailOwnerAddress: getEnv("EMAIL_TO", emailFrom),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		NotifyTimeout:     mustDuration(getEnv("NOTIFY_TIMEOUT", "10s")),
		BrandName:         getEnv("BRAND_NAME", "Better For Today"),
		BrandTag:          getEnv("BRAND_TAG", "TCM Shop"),
		BrandPrimary:      getEnv("BRAND_PRIMARY", "#0b6b3a"),
		LogoURL:           getEnv("LOGO_URL", ""),
		SiteURL:           getEnv("SITE_URL", "https://www.betterfortoday.com"),
		Address:           getEnv("ADDRESS", "123 Herb Street, Singapore"),
		ContactEmail:      getEnv("CONTACT_EMAIL", "contact@tcmshop.com"),
		LeadsCSVPath:      getEnv("LEADS_CSV_PATH", "data/client_queries.csv"),
		SessionTTL:        mustDuration(getEnv("CHAT_SESSION_TTL", "1h")),
	}

	if cfg.EmailProvider != "sendgrid" && cfg.EmailProvider != "smtp" {
		return nil, fmt.Errorf("EMAIL_PROVIDER must be sendgrid or smtp, got %q", cfg.EmailProvider)
	}
	if cfg.NotifyTimeout <= 0 {
		return nil, fmt.Errorf("NOTIFY_TIMEOUT must be a positive duration")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("CHAT_SESSION_TTL must be a positive duration")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
