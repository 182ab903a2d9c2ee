package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Database *DatabaseConfig `mapstructure:"database"`
	Auth     *AuthConfig     `mapstructure:"auth"`
	Storage  *StorageConfig  `mapstructure:"storage"`
	Mail     *MailConfig     `mapstructure:"mail"`
	Weather  *WeatherConfig  `mapstructure:"weather"`
	Jobs     *JobsConfig     `mapstructure:"jobs"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	// Login attempts allowed per second and burst, per client IP.
	LoginRateLimit float64 `mapstructure:"login_rate_limit"`
	LoginBurst     int     `mapstructure:"login_burst"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig describes one of the supported drivers: postgres, mysql or sqlite.
// For sqlite only Name is used, as the database file path.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
	TimeZone string `mapstructure:"time_zone"`
}

type AuthConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	AccessTokenTTL    time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL   time.Duration `mapstructure:"refresh_token_ttl"`
	ResetTokenTTL     time.Duration `mapstructure:"reset_token_ttl"`
	CookieSecure      bool          `mapstructure:"cookie_secure"`
	CookieSameSite    string        `mapstructure:"cookie_same_site"`
	RefreshCookiePath string        `mapstructure:"refresh_cookie_path"`
}

type StorageConfig struct {
	UploadDir   string `mapstructure:"upload_dir"`
	PublicPath  string `mapstructure:"public_path"`
	PublicURL   string `mapstructure:"public_url"`
	MaxFiles    int    `mapstructure:"max_files"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

type MailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	From         string `mapstructure:"from"`
	ResetURL     string `mapstructure:"reset_url"`
}

type WeatherConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Lat      float64       `mapstructure:"lat"`
	Lon      float64       `mapstructure:"lon"`
	Units    string        `mapstructure:"units"`
	Lang     string        `mapstructure:"lang"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Schedule string        `mapstructure:"schedule"`
}

type JobsConfig struct {
	CleanupSchedule       string        `mapstructure:"cleanup_schedule"`
	BatchSize             int           `mapstructure:"batch_size"`
	NotificationRetention time.Duration `mapstructure:"notification_retention"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "3000")
	v.SetDefault("api.base_url", "localhost:3000")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:5173"})
	v.SetDefault("api.login_rate_limit", 1.0)
	v.SetDefault("api.login_burst", 5)

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.time_zone", "America/Costa_Rica")

	v.SetDefault("auth.access_token_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.reset_token_ttl", time.Hour)
	v.SetDefault("auth.cookie_same_site", "strict")
	v.SetDefault("auth.refresh_cookie_path", "/sit/session/")

	v.SetDefault("storage.upload_dir", "images")
	v.SetDefault("storage.public_path", "/images")
	v.SetDefault("storage.public_url", "http://localhost:3000")
	v.SetDefault("storage.max_files", 10)
	v.SetDefault("storage.max_file_size", 10<<20)

	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.lat", 11.0708272)
	v.SetDefault("weather.lon", -85.6306396)
	v.SetDefault("weather.units", "metric")
	v.SetDefault("weather.lang", "sp")
	v.SetDefault("weather.timeout", 10*time.Second)
	v.SetDefault("weather.schedule", "0 */3 * * *")

	v.SetDefault("jobs.cleanup_schedule", "@every 24h")
	v.SetDefault("jobs.batch_size", 1000)
	v.SetDefault("jobs.notification_retention", 30*24*time.Hour)
}

// Load reads the YAML file at path, then applies environment overrides
// such as API_PORT or AUTH_JWT_SECRET.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart the server to apply it", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}

func (c *AppConfig) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.API.Environment == "production"
}
