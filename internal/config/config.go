// Package config resolves all recognized options into one explicit struct
// that is passed into engine constructors. Engines never read the
// environment themselves.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Office describes the geofence and working-hours policy.
type Office struct {
	Latitude          float64
	Longitude         float64
	MaxDistanceMeters float64
	WorkStart         string // "HH:MM" wall clock
	GraceMinutes      int
	StandardDayHours  float64
}

// QR describes code issuance and expiry policy.
type QR struct {
	Prefix      string
	ExpiryHours int
}

// Leave holds the process-wide annual allowances in days, keyed by leave type.
type Leave struct {
	Allowances map[string]int
}

// SMTP carries the outbound mail settings for the notification consumer.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Auth struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	Port        string
	Database    Database
	RedisAddr   string
	KafkaBroker string
	Office      Office
	QR          QR
	Leave       Leave
	SMTP        SMTP
	Auth        Auth
	SweepCron   string // cron expression for the daily absence sweep
}

// Load reads the environment into a Config, applying the documented defaults
// for every unset option.
func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3000"),
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "attendance_db"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		Office: Office{
			Latitude:          getEnvFloat("OFFICE_LATITUDE", 37.7749),
			Longitude:         getEnvFloat("OFFICE_LONGITUDE", -122.4194),
			MaxDistanceMeters: getEnvFloat("MAX_DISTANCE_METERS", 100),
			WorkStart:         getEnv("WORK_START_TIME", "08:00"),
			GraceMinutes:      getEnvInt("LATE_GRACE_MINUTES", 20),
			StandardDayHours:  getEnvFloat("STANDARD_DAY_HOURS", 8.0),
		},
		QR: QR{
			Prefix:      getEnv("QR_CODE_PREFIX", "OFFICE_QR_"),
			ExpiryHours: getEnvInt("QR_CODE_EXPIRY_HOURS", 24),
		},
		Leave: Leave{
			Allowances: map[string]int{
				"SICK":      getEnvInt("LEAVE_ALLOWANCE_SICK", 10),
				"VACATION":  getEnvInt("LEAVE_ALLOWANCE_VACATION", 21),
				"PERSONAL":  getEnvInt("LEAVE_ALLOWANCE_PERSONAL", 5),
				"EMERGENCY": getEnvInt("LEAVE_ALLOWANCE_EMERGENCY", 3),
				"MATERNITY": getEnvInt("LEAVE_ALLOWANCE_MATERNITY", 90),
				"PATERNITY": getEnvInt("LEAVE_ALLOWANCE_PATERNITY", 15),
			},
		},
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		},
		Auth: Auth{
			JWTSecret:          os.Getenv("JWT_SECRET"),
			AccessTokenExpiry:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
			RefreshTokenExpiry: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		},
		SweepCron: getEnv("ABSENCE_SWEEP_CRON", "0 18 * * *"),
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if _, _, err := ParseWorkStart(cfg.Office.WorkStart); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseWorkStart splits an "HH:MM" wall-clock string into hour and minute.
func ParseWorkStart(v string) (hour, minute int, err error) {
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("invalid WORK_START_TIME %q: %w", v, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid WORK_START_TIME %q", v)
	}
	return h, m, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
