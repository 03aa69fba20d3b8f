package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds process level configuration aggregated from env/config files.
type Config struct {
	Name       string `mapstructure:"name"`
	Contact    string `mapstructure:"contact"`
	Project    string `mapstructure:"project"`
	Plan       string `mapstructure:"plan"`
	InfoLabels bool   `mapstructure:"info_labels"`
	AuditDB    string `mapstructure:"audit_db"`
}

// Load reads configuration from FINGER_* environment variables and optional
// config files. Resource paths may use a leading "~/" for the invoking
// user's home directory.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("FINGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("name", "anonymous")
	v.SetDefault("contact", "~/.contact")
	v.SetDefault("project", "~/.project")
	v.SetDefault("plan", "~/.plan")
	v.SetDefault("info_labels", true)
	v.SetDefault("audit_db", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Contact = expandHome(cfg.Contact)
	cfg.Project = expandHome(cfg.Project)
	cfg.Plan = expandHome(cfg.Plan)
	cfg.AuditDB = expandHome(cfg.AuditDB)

	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
