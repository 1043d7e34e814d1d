package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// secrets from the environment win over private.yaml
const (
	EnvPgPassword = "FORUM_PG_PASSWORD"
	EnvJwtKey     = "FORUM_JWT_KEY"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg     Pg            `yaml:"pg" validate:"required"`
	Http   Http          `yaml:"http" validate:"required"`
	Log    Log           `yaml:"log"`
	JwtTTL time.Duration `yaml:"jwt_ttl" validate:"required"`
	// upper bound of a request body in bytes
	MaxBodySize int64 `yaml:"max_body_size" validate:"required,gt=0"`
}

type Pg struct {
	Host         string `yaml:"host" validate:"required"`
	Port         int    `yaml:"port" validate:"required"`
	User         string `yaml:"user" validate:"required"`
	Dbname       string `yaml:"dbname" validate:"required"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type Http struct {
	Addr           string        `yaml:"addr" validate:"required"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"required"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	// served behind TLS: adds HSTS and marks the auth cookie Secure
	SecureCookies bool `yaml:"secure_cookies"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	Pg     PgPrivate `yaml:"pg"`
	JwtKey string    `yaml:"jwt_key" validate:"required"`
}

type PgPrivate struct {
	Password string `yaml:"password" validate:"required"`
}

// New assembles a config from already loaded parts.
func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) PgPassword() string {
	return s.private.Pg.Password
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func mustValidate(name string, v interface{}) {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(v); err != nil {
		panic(fmt.Sprintf("invalid %s config: %v", name, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// private.yaml may be absent when every secret comes from the environment.
func MustLoad(configFolder string) *Config {
	_ = godotenv.Load(".env")

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	mustValidate("public", public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}
	if v := os.Getenv(EnvPgPassword); v != "" {
		private.Pg.Password = v
	}
	if v := os.Getenv(EnvJwtKey); v != "" {
		private.JwtKey = v
	}
	mustValidate("private", private)

	return &Config{public, private}
}
