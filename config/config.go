package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/auth"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
)

type Config struct {
	HTTP     HTTP
	Database Database
	JWT      JWT
	Upload   Upload
	Admin    Admin
}

type HTTP struct {
	Port    string `env:"PORT" env-default:"8080"`
	GinMode string `env:"GIN_MODE" env-default:"debug"`
}

type Database struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `env:"DB_NAME" env-default:"airport"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type JWT struct {
	Secret     string        `env:"JWT_SECRET" env-required:"true"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" env-default:"30m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" env-default:"24h"`
}

type Upload struct {
	Dir          string `env:"UPLOAD_DIR" env-default:"./uploads"`
	MediaURL     string `env:"MEDIA_URL" env-default:"/uploads"`
	MaxSizeBytes int64  `env:"MAX_IMAGE_SIZE" env-default:"5242880"`
}

// Admin seeds one staff account on startup when both values are set.
type Admin struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := repository.Migrate(db); err != nil {
		return nil, err
	}

	if err := seedAdmin(context.Background(), repository.NewUserRepository(db), cfg.Admin); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	return db, nil
}

func seedAdmin(ctx context.Context, users repository.UserRepository, admin Admin) error {
	if admin.Email == "" || admin.Password == "" {
		return nil
	}

	_, err := users.GetByEmail(ctx, admin.Email)
	if err == nil {
		return nil
	}
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		return err
	}

	hashed, err := auth.HashPassword(admin.Password)
	if err != nil {
		return err
	}
	if err := users.Create(ctx, &models.User{Email: admin.Email, Password: hashed, IsStaff: true}); err != nil {
		return err
	}
	log.Printf("Seeded admin account %s", admin.Email)
	return nil
}
