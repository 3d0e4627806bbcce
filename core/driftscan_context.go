package core

import (
	"context"
	"os"

	"github.com/crmarques/driftscan/config"
	fsstore "github.com/crmarques/driftscan/internal/providers/reportstore/fsstore"
	s3provider "github.com/crmarques/driftscan/internal/providers/uploader/s3"
	"github.com/crmarques/driftscan/uploader"
)

// NewDriftscanContext wires the default providers from configuration.
func NewDriftscanContext(opts BootstrapConfig) (DriftscanContext, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return DriftscanContext{}, err
	}

	store := fsstore.New()
	return DriftscanContext{
		Config:        cfg,
		ResourceLists: store,
		Reports:       store,
	}, nil
}

// NewReportUploader builds the configured S3 uploader. Upload settings are
// optional in config; absent sections fall back to the packaged defaults so
// `--upload` works against a local object store out of the box.
func NewReportUploader(ctx context.Context, cfg config.Config) (uploader.ReportUploader, error) {
	uploadCfg := cfg.Upload
	if uploadCfg == nil {
		uploadCfg = &config.UploadConfig{}
	}

	resolved := s3provider.Config{
		Endpoint:        uploadCfg.Endpoint,
		Region:          uploadCfg.Region,
		Bucket:          uploadCfg.Bucket,
		Prefix:          uploadCfg.Prefix,
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if resolved.Region == "" {
		resolved.Region = config.DefaultUploadRegion
	}
	if resolved.Bucket == "" {
		resolved.Bucket = config.DefaultUploadBucket
	}
	if resolved.Prefix == "" {
		resolved.Prefix = config.DefaultUploadPrefix
	}

	return s3provider.New(ctx, resolved)
}
