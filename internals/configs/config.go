package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	Port             string
	Admin            AdminConfig
	Database         DatabaseConfig
	UploadsDir       string
	PublicDir        string
	BodyLimitMB      int // JSON and form bodies
	UploadLimitMB    int // multipart uploads, 0 = unlimited
	CORSAllowOrigins string
	LoginRateLimit   int // per IP per minute, 0 = off
	Log              LogConfig
}

// AdminConfig is the single admin identity. Only the session registry reads it.
type AdminConfig struct {
	Username string
	Password string
	// Defaulted is true when either credential came from the built-in defaults.
	Defaulted bool
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type LogConfig struct {
	Mode  string
	Level string
}

func (c LogConfig) IsProduction() bool {
	m := strings.ToLower(strings.TrimSpace(c.Mode))
	return m == "production" || m == "prod"
}

// PostgresDSN builds the URL form used when DB_DRIVER=postgres.
func (c DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=btec",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// SQLiteDSN keeps the database file relative to the working directory.
func (c DatabaseConfig) SQLiteDSN() string {
	return c.Path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[configs] no .env file, using system environment")
		} else {
			log.Println("[configs] .env loaded")
		}
	} else {
		log.Println("[configs] running on Railway, using system environment")
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "3000")
	v.SetDefault("admin_user", "admin")
	v.SetDefault("admin_pass", "admin")
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_path", "btec.db")
	v.SetDefault("db_sslmode", "require")
	v.SetDefault("uploads_dir", "uploads")
	v.SetDefault("public_dir", "public")
	v.SetDefault("body_limit_mb", 10)
	v.SetDefault("upload_limit_mb", 0)
	v.SetDefault("cors_allow_origins", "*")
	v.SetDefault("login_rate_limit", 5)
	v.SetDefault("log_mode", "development")
	v.SetDefault("log_level", "info")
	return v
}

// Load reads the process environment (after LoadEnv) into an AppConfig.
func Load() (*AppConfig, error) {
	v := newViper()

	_, userSet := os.LookupEnv("ADMIN_USER")
	_, passSet := os.LookupEnv("ADMIN_PASS")

	cfg := &AppConfig{
		Port: strings.TrimSpace(v.GetString("port")),
		Admin: AdminConfig{
			Username:  strings.TrimSpace(v.GetString("admin_user")),
			Password:  strings.TrimSpace(v.GetString("admin_pass")),
			Defaulted: !userSet || !passSet,
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
			Path:     v.GetString("db_path"),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		UploadsDir:       v.GetString("uploads_dir"),
		PublicDir:        v.GetString("public_dir"),
		BodyLimitMB:      v.GetInt("body_limit_mb"),
		UploadLimitMB:    v.GetInt("upload_limit_mb"),
		CORSAllowOrigins: v.GetString("cors_allow_origins"),
		LoginRateLimit:   v.GetInt("login_rate_limit"),
		Log: LogConfig{
			Mode:  v.GetString("log_mode"),
			Level: v.GetString("log_level"),
		},
	}

	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil, errors.New("ADMIN_USER and ADMIN_PASS must not be blank")
	}
	if cfg.BodyLimitMB <= 0 {
		cfg.BodyLimitMB = 10
	}
	if cfg.UploadLimitMB < 0 {
		cfg.UploadLimitMB = 0
	}
	return cfg, nil
}

// =======================
// GORM LOGGER (zap)
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	log           *zap.Logger
}

func NewGormLogger(l *zap.Logger) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
		log:           l.Named("gorm"),
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("file", utils.FileWithLineNum()),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		l.log.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.log.Warn("slow query", fields...)
	case l.LogLevel >= gormLogger.Info:
		l.log.Debug("query", fields...)
	}
}
