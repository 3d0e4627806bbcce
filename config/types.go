package config

const (
	ConfigFileEnvVar  = "DRIFTSCAN_CONFIG_FILE"
	DefaultConfigPath = "~/.driftscan/config.yaml"

	DefaultUploadBucket = "analyzer-reports"
	DefaultUploadPrefix = "reports/"
	DefaultUploadRegion = "us-east-1"
)

type Config struct {
	Upload *UploadConfig `yaml:"upload,omitempty"`
}

// UploadConfig configures the optional S3 report upload. Credentials come
// from the standard AWS environment variables.
type UploadConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Bucket   string `yaml:"bucket,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

func (c *UploadConfig) withDefaults() *UploadConfig {
	resolved := UploadConfig{}
	if c != nil {
		resolved = *c
	}
	if resolved.Region == "" {
		resolved.Region = DefaultUploadRegion
	}
	if resolved.Bucket == "" {
		resolved.Bucket = DefaultUploadBucket
	}
	if resolved.Prefix == "" {
		resolved.Prefix = DefaultUploadPrefix
	}
	return &resolved
}
