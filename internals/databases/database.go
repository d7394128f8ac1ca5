package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"btec_backend/internals/configs"
	generationModel "btec_backend/internals/features/classroom/generations/model"
	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	taskModel "btec_backend/internals/features/classroom/tasks/model"
	lessonModel "btec_backend/internals/features/lessons/python_lessons/model"
)

// ConnectDB opens the configured store. SQLite (a file next to the process)
// is the default; postgres is available for hosted deployments.
func ConnectDB(cfg configs.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case configs.DriverPostgres:
		log.Info("connecting to PostgreSQL", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), gormConfig(log))
	default:
		log.Info("opening SQLite", zap.String("path", cfg.Path))
		return OpenSQLite(cfg.SQLiteDSN(), log)
	}
}

// OpenSQLite opens a SQLite DSN. A nil logger silences gorm.
func OpenSQLite(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

func gormConfig(log *zap.Logger) *gorm.Config {
	cfg := &gorm.Config{
		// unique-index violations surface as gorm.ErrDuplicatedKey on every driver
		TranslateError: true,
	}
	if log == nil {
		cfg.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	} else {
		cfg.Logger = configs.NewGormLogger(log)
	}
	return cfg
}

func TunePool(db *gorm.DB, driver string, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("pool tune failed", zap.Error(err))
		return
	}
	if driver == configs.DriverSQLite {
		// one writer at a time; busy_timeout covers the rest
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxIdleTime(0)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB, log *zap.Logger) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(db); err != nil {
			log.Warn("warm-up ping failed", zap.Error(err))
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the four content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&generationModel.GenerationModel{},
		&taskModel.TaskModel{},
		&taskDocModel.TaskDocModel{},
		&lessonModel.PythonLessonModel{},
	)
}
