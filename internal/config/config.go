package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (ключ Stripe, пароль БД, админский токен) берутся из окружения,
// .env подхватывается через godotenv, если присутствует
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Stripe     StripeConfig     `toml:"stripe"`
	Mail       MailConfig       `toml:"mail"`
	Booking    BookingConfig    `toml:"booking"`
	Admin      AdminConfig      `toml:"admin"`
	Generation GenerationConfig `toml:"generation"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StripeConfig struct {
	SecretKey   string `toml:"-"` // только из окружения
	RedirectURL string `toml:"redirect_url"`
	Timeout     int    `toml:"timeout"`
}

type MailConfig struct {
	URL               string `toml:"url"`
	From              string `toml:"from"`
	NotificationEmail string `toml:"notification_email"` // адрес владельца для уведомлений о новых бронированиях
	Timeout           int    `toml:"timeout"`
}

type BookingConfig struct {
	// ResidentDiscount скидка для резидентов в пути создания бронирования
	// (например "0.25" = 25%)
	ResidentDiscount string `toml:"resident_discount"`
}

type AdminConfig struct {
	Token string `toml:"-"` // только из окружения
}

type GenerationConfig struct {
	Enabled  bool   `toml:"enabled"`
	CronSpec string `toml:"cron_spec"` // расписание предгенерации доступности на следующий год
}

// Load читает конфигурацию из toml-файла и накладывает секреты из окружения
func Load(path string) (*Config, error) {
	// .env опционален, ошибка отсутствия файла игнорируется
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Admin.Token = os.Getenv("ADMIN_TOKEN")
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if c.Booking.ResidentDiscount == "" {
		c.Booking.ResidentDiscount = "0.25"
	}
	return nil
}
