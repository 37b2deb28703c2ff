package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	} `yaml:"server"`

	Storage struct {
		Mongo struct {
			URI      string `yaml:"uri"`
			Database string `yaml:"database"`
			Timeout  string `yaml:"timeout"`
		} `yaml:"mongo"`
	} `yaml:"storage"`

	JWT struct {
		// Secret es la clave simétrica HS256. Nunca se loguea.
		Secret    string `yaml:"secret"`
		AccessTTL string `yaml:"access_ttl"`
	} `yaml:"jwt"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load lee el YAML en path (si existe), aplica overrides de entorno y defaults.
// Un path vacío o inexistente no es error: la configuración puede venir
// completa del entorno (p.ej. en contenedores).
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(&c)

	// sane defaults
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Storage.Mongo.URI == "" {
		c.Storage.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Storage.Mongo.Database == "" {
		c.Storage.Mongo.Database = "finanzasapi"
	}
	if c.Storage.Mongo.Timeout == "" {
		c.Storage.Mongo.Timeout = "10s"
	}
	if c.JWT.AccessTTL == "" {
		c.JWT.AccessTTL = "24h"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}

	if c.JWT.Secret == "" {
		return nil, fmt.Errorf("config: jwt.secret (o JWT_SECRET) es requerido")
	}

	return &c, nil
}

// applyEnv pisa valores con variables de entorno cuando están presentes.
func applyEnv(c *Config) {
	if v := getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := getenv("ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("PORT"); v != "" && getenv("ADDR") == "" {
		c.Server.Addr = ":" + v
	}
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.Server.CORSAllowedOrigins = splitCSV(v)
	}
	if v := getenv("MONGO_URI"); v != "" {
		c.Storage.Mongo.URI = v
	}
	if v := getenv("MONGO_DB"); v != "" {
		c.Storage.Mongo.Database = v
	}
	if v := getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	// alias histórico
	if v := getenv("SERVER_SECRET_KEY"); v != "" && getenv("JWT_SECRET") == "" {
		c.JWT.Secret = v
	}
	if v := getenv("JWT_ACCESS_TTL"); v != "" {
		c.JWT.AccessTTL = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// AccessTTL parsea el TTL del access token; 24h si es inválido.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWT.AccessTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// MongoTimeout parsea el timeout de conexión a Mongo; 10s si es inválido.
func (c *Config) MongoTimeout() time.Duration {
	d, err := time.ParseDuration(c.Storage.Mongo.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
