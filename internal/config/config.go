package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvConfigPath is the environment variable for config file path.
	EnvConfigPath = "SHARDVAULT_CONFIG"
	// EnvProfile is the environment variable for profile name.
	EnvProfile = "SHARDVAULT_PROFILE"
)

// EffectiveConfig holds the merged configuration (defaults + config
// file + profile).
type EffectiveConfig struct {
	AuditLog  string `mapstructure:"audit_log" json:"audit_log"`
	Threshold int    `mapstructure:"threshold" json:"threshold"`
	Shards    int    `mapstructure:"shards" json:"shards"`
	OutputDir string `mapstructure:"output_dir" json:"output_dir"`
}

// Profile holds profile-specific overrides.
type Profile struct {
	AuditLog  string `mapstructure:"audit_log"`
	Threshold int    `mapstructure:"threshold"`
	Shards    int    `mapstructure:"shards"`
	OutputDir string `mapstructure:"output_dir"`
}

// ConfigFile represents the root config file structure (optional base
// keys + profiles).
type ConfigFile struct {
	AuditLog  string             `mapstructure:"audit_log"`
	Threshold int                `mapstructure:"threshold"`
	Shards    int                `mapstructure:"shards"`
	OutputDir string             `mapstructure:"output_dir"`
	Profiles  map[string]Profile `mapstructure:"profiles"`
}

// DefaultEffective returns the built-in default effective config.
func DefaultEffective() EffectiveConfig {
	return EffectiveConfig{
		Threshold: 3,
		Shards:    5,
		OutputDir: ".",
	}
}

var (
	// loaded is the config loaded in the current process (set by Load).
	loaded *EffectiveConfig
)

// Load reads config from the given path (or discovers it), applies the
// given profile, and stores the result.
// Config path: if path is non-empty it is used; else SHARDVAULT_CONFIG;
// else ~/.shardvault.yaml, ./.shardvault.yaml (first found).
// Profile: if profile is non-empty it is used; else SHARDVAULT_PROFILE;
// else no profile.
// Precedence for final values: caller will layer CLI flags on top; this
// returns the file-based effective config.
func Load(configPath, profile string) (*EffectiveConfig, error) {
	base := DefaultEffective()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if profile == "" {
		profile = os.Getenv(EnvProfile)
	}

	if configPath != "" {
		// Single explicit file.
		if err := readAndMerge(configPath, profile, &base); err != nil {
			return nil, err
		}
	} else {
		// Search default locations.
		home, _ := os.UserHomeDir()
		candidates := []string{}
		if home != "" {
			candidates = append(candidates, filepath.Join(home, ".shardvault.yaml"), filepath.Join(home, ".shardvault.yml"))
		}
		wd, _ := os.Getwd()
		if wd != "" {
			candidates = append(candidates, filepath.Join(wd, ".shardvault.yaml"), filepath.Join(wd, ".shardvault.yml"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				if err := readAndMerge(p, profile, &base); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	loaded = &base
	return loaded, nil
}

// readAndMerge reads one config file and merges it (and optional
// profile) into base.
func readAndMerge(path, profile string, base *EffectiveConfig) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		// Config file optional: missing file is not an error (viper may
		// return *fs.PathError when using SetConfigFile).
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist) {
			return nil
		}
		if errors.As(err, new(viper.ConfigFileNotFoundError)) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Unmarshal base (root) keys.
	if v.IsSet("audit_log") {
		base.AuditLog = v.GetString("audit_log")
	}
	if v.IsSet("threshold") {
		base.Threshold = v.GetInt("threshold")
	}
	if v.IsSet("shards") {
		base.Shards = v.GetInt("shards")
	}
	if v.IsSet("output_dir") {
		base.OutputDir = v.GetString("output_dir")
	}

	// Apply profile overrides.
	if profile != "" && v.IsSet("profiles") {
		profiles := v.GetStringMap("profiles")
		if p, ok := profiles[profile].(map[string]interface{}); ok {
			if s, ok := p["audit_log"].(string); ok && s != "" {
				base.AuditLog = s
			}
			if n, ok := p["threshold"].(int); ok && n > 0 {
				base.Threshold = n
			}
			if n, ok := p["shards"].(int); ok && n > 0 {
				base.Shards = n
			}
			if s, ok := p["output_dir"].(string); ok && s != "" {
				base.OutputDir = s
			}
		}
	}

	return nil
}

// Get returns the loaded effective config, or nil if Load was never
// called or failed.
func Get() *EffectiveConfig {
	return loaded
}

// SetLoaded sets the effective config (for tests).
func SetLoaded(c *EffectiveConfig) {
	loaded = c
}
