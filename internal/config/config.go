package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"guestdesk/internal/models"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	Redis      Redis      `yaml:"redis"`
	Razorpay   Razorpay   `yaml:"razorpay"`
	SMTP       SMTP       `yaml:"smtp"`
	Hotel      Hotel      `yaml:"hotel"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"guestdesk"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Razorpay struct {
	KeyID         string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret     string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	WebhookSecret string `yaml:"webhook_secret" env:"RAZORPAY_WEBHOOK_SECRET"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

type Hotel struct {
	DeluxeRooms   int   `yaml:"deluxe_rooms" env-default:"10"`
	SuiteRooms    int   `yaml:"suite_rooms" env-default:"20"`
	StandardRooms int   `yaml:"standard_rooms" env-default:"30"`
	DeluxeRate    int64 `yaml:"deluxe_rate" env-default:"250000"`   // paise per night
	SuiteRate     int64 `yaml:"suite_rate" env-default:"400000"`    // paise per night
	StandardRate  int64 `yaml:"standard_rate" env-default:"150000"` // paise per night

	Currency string `yaml:"currency" env-default:"INR"`

	// PendingTTL is how long an unpaid pending booking may live before the
	// background sweep removes it. Zero disables the sweep.
	PendingTTL      time.Duration `yaml:"pending_ttl" env-default:"0"`
	AvailabilityTTL time.Duration `yaml:"availability_ttl" env-default:"30s"`
}

func (h Hotel) RoomLimit(rt models.RoomType) int {
	switch rt {
	case models.RoomDeluxe:
		return h.DeluxeRooms
	case models.RoomSuite:
		return h.SuiteRooms
	case models.RoomStandard:
		return h.StandardRooms
	}
	return 0
}

func (h Hotel) NightlyRate(rt models.RoomType) int64 {
	switch rt {
	case models.RoomDeluxe:
		return h.DeluxeRate
	case models.RoomSuite:
		return h.SuiteRate
	case models.RoomStandard:
		return h.StandardRate
	}
	return h.StandardRate
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
