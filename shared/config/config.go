package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Address            string        `yaml:"address"` // host:port the API listens on
	JwtTTL             time.Duration `yaml:"jwt_ttl"`
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	ThumbnailWidth     int           `yaml:"thumbnail_width"`
	ThumbnailHeight    int           `yaml:"thumbnail_height"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Panics on any error: the process cannot run without configuration.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
