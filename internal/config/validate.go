package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Attachments.validate(); err != nil {
		return fmt.Errorf("attachments: %w", err)
	}

	if c.Idempotency.Enabled {
		if strings.TrimSpace(c.Idempotency.Path) == "" {
			return fmt.Errorf("idempotency.path is required when idempotency is enabled")
		}
		if c.Idempotency.TTL <= 0 {
			return fmt.Errorf("idempotency.ttl must be > 0 (got %v)", c.Idempotency.TTL)
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.UploadsPerMin <= 0) {
		return fmt.Errorf("rate_limit: requests_per_min and uploads_per_min must be > 0")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.Endpoint != "" {
		if _, err := parseAbsURL(s.Endpoint); err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
	}
	if s.PublicBaseURL == "" {
		return fmt.Errorf("public_base_url is required")
	}
	if _, err := parseAbsURL(s.PublicBaseURL); err != nil {
		return fmt.Errorf("public_base_url: %w", err)
	}
	if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
		return fmt.Errorf("access_key_id and secret_access_key must be set together")
	}
	return nil
}

func (a *AttachmentsConfig) validate() error {
	if a.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be > 0 (got %d)", a.MaxFileSize)
	}
	if a.MaxPerRecord <= 0 {
		return fmt.Errorf("max_per_record must be > 0 (got %d)", a.MaxPerRecord)
	}
	if a.MaxPerUpload <= 0 {
		return fmt.Errorf("max_per_upload must be > 0 (got %d)", a.MaxPerUpload)
	}
	return nil
}

func parseAbsURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("must be an absolute http(s) URL (got %q)", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	return u, nil
}
