package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/crmarques/driftscan/faults"
)

// Load reads the config file at path (or the default location when path is
// empty) and applies environment overrides. A missing file is not an error;
// environment variables alone are a complete configuration.
func Load(path string) (Config, error) {
	resolvedPath, err := resolveConfigPath(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	raw, err := os.ReadFile(resolvedPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, faults.NewTypedError(faults.ValidationError, "invalid config file "+resolvedPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to environment overrides
	default:
		return Config{}, faults.NewTypedError(faults.InternalError, "failed to read config file "+resolvedPath, err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Upload != nil {
		cfg.Upload = cfg.Upload.withDefaults()
	}
	return cfg, nil
}

func resolveConfigPath(path string) (string, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = os.Getenv(ConfigFileEnvVar)
	}
	if resolved == "" {
		resolved = DefaultConfigPath
	}

	if strings.HasPrefix(resolved, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", faults.NewTypedError(faults.InternalError, "failed to resolve home directory", err)
		}
		resolved = filepath.Join(home, resolved[2:])
	}
	return resolved, nil
}

func applyEnvOverrides(cfg *Config) {
	overrides := UploadConfig{
		Endpoint: os.Getenv("AWS_ENDPOINT_URL"),
		Region:   os.Getenv("AWS_REGION"),
		Bucket:   os.Getenv("DRIFTSCAN_S3_BUCKET"),
		Prefix:   os.Getenv("DRIFTSCAN_S3_PREFIX"),
	}
	if overrides == (UploadConfig{}) {
		return
	}

	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if overrides.Endpoint != "" {
		cfg.Upload.Endpoint = overrides.Endpoint
	}
	if overrides.Region != "" {
		cfg.Upload.Region = overrides.Region
	}
	if overrides.Bucket != "" {
		cfg.Upload.Bucket = overrides.Bucket
	}
	if overrides.Prefix != "" {
		cfg.Upload.Prefix = overrides.Prefix
	}
}
