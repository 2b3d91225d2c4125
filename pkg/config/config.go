package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/pixelbin"
	ConfigFileName    = "pixelbin.yml"
)

// MinSessionKeyLen is the minimum length of the session signing key. Shorter
// keys are rejected at boot; there is deliberately no built-in default key.
const MinSessionKeyLen = 32

// Config holds all Pixelbin configuration settings.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server listen port
	Port string `yaml:"port" json:"port"`

	// UploadDir is the filesystem directory for originals and thumbnails
	UploadDir string `yaml:"upload_dir" json:"upload_dir"`

	// SessionKey signs the session cookies; required, no default
	SessionKey string `yaml:"session_key" json:"session_key"`

	// MaxUploadBytes caps the size of an uploaded file
	MaxUploadBytes int64 `yaml:"max_upload_bytes" json:"max_upload_bytes"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values.
func newDefault() *Config {
	return &Config{
		BindAddress:    "0.0.0.0",
		Port:           "8000",
		UploadDir:      "uploads",
		MaxUploadBytes: 10 << 20,
		sources:        make(map[string]string),
	}
}

func attributeNames() []string {
	return []string{
		"database_url", "bind_address", "port", "upload_dir",
		"session_key", "max_upload_bytes",
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("PIXELBIN_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.UploadDir != "" {
		c.UploadDir = file.UploadDir
		c.sources["upload_dir"] = "file"
	}
	if file.SessionKey != "" {
		c.SessionKey = file.SessionKey
		c.sources["session_key"] = "file"
	}
	if file.MaxUploadBytes != 0 {
		c.MaxUploadBytes = file.MaxUploadBytes
		c.sources["max_upload_bytes"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("PIXELBIN_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PIXELBIN_PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("PIXELBIN_UPLOAD_DIR"); val != "" {
		c.UploadDir = val
		c.sources["upload_dir"] = "environment"
	}
	if val := os.Getenv("PIXELBIN_SESSION_KEY"); val != "" {
		c.SessionKey = val
		c.sources["session_key"] = "environment"
	}
	if val := os.Getenv("PIXELBIN_MAX_UPLOAD_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.MaxUploadBytes = i
			c.sources["max_upload_bytes"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file.
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute.
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Addr returns the bind address and port joined for net/http.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.BindAddress, c.Port)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (set DATABASE_URL)")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if len(c.SessionKey) < MinSessionKeyLen {
		return fmt.Errorf("session_key must be at least %d bytes (set PIXELBIN_SESSION_KEY)", MinSessionKeyLen)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. The session key is redacted.
func (c *Config) Attributes() []Attribute {
	sessionKey := ""
	if c.SessionKey != "" {
		sessionKey = "(redacted)"
	}
	return []Attribute{
		{Name: "database_url", Value: c.DatabaseURL, Source: c.Source("database_url")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "upload_dir", Value: c.UploadDir, Source: c.Source("upload_dir")},
		{Name: "session_key", Value: sessionKey, Source: c.Source("session_key")},
		{Name: "max_upload_bytes", Value: strconv.FormatInt(c.MaxUploadBytes, 10), Source: c.Source("max_upload_bytes")},
	}
}

// FormatJSON returns a JSON representation of the configuration.
func (c *Config) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a text representation of the configuration.
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}
