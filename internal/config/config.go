package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hbjs97/ok/internal/locator"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

const (
	// DefaultProfileFile은 프로필 파일의 기본 이름이다.
	DefaultProfileFile = locator.DefaultFileName
	// DefaultLogLevel은 stderr를 조용히 유지하는 기본 로그 레벨이다.
	DefaultLogLevel = "warn"
)

// Config는 ok 사용자 설정 파일의 최상위 구조체다.
type Config struct {
	ProfileFile string `toml:"profile_file"`
	Prefix      string `toml:"prefix"`
	Suffix      string `toml:"suffix"`
	LogLevel    string `toml:"log_level"`

	// Loaded는 파일에서 읽었는지 여부다. 파일이 없으면 false.
	Loaded bool `toml:"-"`
}

// Default는 기본값만 채운 Config를 반환한다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath는 $XDG_CONFIG_HOME/ok/config.toml, 없으면 ~/.config/ok/config.toml이다.
func DefaultPath() string {
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "ok", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("could not determine home directory", slog.Any("error", err))
		return filepath.Join(os.TempDir(), "ok", "config.toml")
	}
	return filepath.Join(home, ".config", "ok", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값을 반환한다 (graceful).
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.Loaded = true
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ProfileFile == "" {
		c.ProfileFile = DefaultProfileFile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) validate() error {
	if err := ValidateProfileFile(c.ProfileFile); err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	return nil
}

// ValidateProfileFile은 프로필 파일 이름이 경로 구분자 없는 단일 이름인지 확인한다.
func ValidateProfileFile(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: profile_file은 파일 이름이어야 합니다: %q", ErrConfig, name)
	}
	return nil
}
