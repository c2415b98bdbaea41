package lireddit

import (
	"errors"
	"net/http"
	"time"
)

// Config defines the engine's tunables. Configure once, pass to
// [Builder.WithConfig], and treat as immutable afterwards; Build validates
// the whole struct and rejects inconsistent values.
type Config struct {
	Production    bool
	Session       SessionConfig
	Cookie        CookieConfig
	Password      PasswordConfig
	PasswordReset PasswordResetConfig
	Audit         AuditConfig
	Metrics       MetricsConfig
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls the Redis-backed session records. TTL is the
// store-side lifetime; it is refreshed only on explicit writes, never on
// reads (no sliding expiration), so the store stays the single source of
// truth for session liveness.
type SessionConfig struct {
	RedisPrefix string
	TTL         time.Duration
}

/*
====================================
COOKIE CONFIG
====================================
*/

// DefaultCookieName is the session cookie name fixed by the API contract.
const DefaultCookieName = "qid"

// CookieConfig describes the session cookie attributes enforced at
// issuance. Domain applies only in production; development cookies are
// host-only. The cookie lifetime is deliberately near-infinite: the store
// TTL, not the cookie, terminates sessions.
type CookieConfig struct {
	Name     string
	Path     string
	Domain   string
	MaxAge   time.Duration
	SameSite http.SameSite
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig holds the argon2id parameters. Memory is in KiB.
type PasswordConfig struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

/*
====================================
PASSWORD RESET CONFIG
====================================
*/

// PasswordResetConfig controls the single-use reset tokens. TTL is tuned
// for an email round-trip (days, not minutes).
type PasswordResetConfig struct {
	RedisPrefix string
	TTL         time.Duration
}

/*
====================================
AUDIT / METRICS CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig enables the in-process counters exposed through
// [Engine.MetricsSnapshot] and the metrics/export exporters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the development defaults: ten-year sessions,
// three-day reset tokens, lax host-only cookies, argon2id at the
// RFC 9106 low-memory parameters.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Production: false,
		Session: SessionConfig{
			RedisPrefix: "sess",
			TTL:         10 * 365 * 24 * time.Hour,
		},
		Cookie: CookieConfig{
			Name:     DefaultCookieName,
			Path:     "/",
			Domain:   "",
			MaxAge:   10 * 365 * 24 * time.Hour,
			SameSite: http.SameSiteLaxMode,
		},
		Password: PasswordConfig{
			Memory:      65536,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		PasswordReset: PasswordResetConfig{
			RedisPrefix: "forget-password",
			TTL:         3 * 24 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types; a shallow copy is a deep copy.
	return cfg
}

func validateConfig(cfg Config) error {
	if cfg.Session.RedisPrefix == "" {
		return errors.New("session redis prefix must not be empty")
	}
	if cfg.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if cfg.Cookie.Name == "" {
		return errors.New("cookie name must not be empty")
	}
	if cfg.Cookie.MaxAge <= 0 {
		return errors.New("cookie max age must be positive")
	}
	if cfg.PasswordReset.RedisPrefix == "" {
		return errors.New("password reset redis prefix must not be empty")
	}
	if cfg.PasswordReset.RedisPrefix == cfg.Session.RedisPrefix {
		return errors.New("password reset prefix must not collide with session prefix")
	}
	if cfg.PasswordReset.TTL <= 0 {
		return errors.New("password reset ttl must be positive")
	}
	if cfg.Password.Memory < 8*1024 {
		return errors.New("argon2 memory below 8 MiB")
	}
	if cfg.Password.Time < 1 {
		return errors.New("argon2 time cost below 1")
	}
	if cfg.Password.Parallelism < 1 {
		return errors.New("argon2 parallelism below 1")
	}
	if cfg.Password.SaltLength < 16 {
		return errors.New("argon2 salt below 16 bytes")
	}
	if cfg.Password.KeyLength < 16 {
		return errors.New("argon2 key below 16 bytes")
	}
	if cfg.Production && cfg.Cookie.Domain == "" {
		return errors.New("production requires an explicit cookie domain")
	}
	return nil
}
