package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the top-level oio configuration, loaded from a TOML file.
type Config struct {
	Service Service   `toml:"service"`
	Job     JobConfig `toml:"job"`
}

// Service describes the object storage backend under test.
type Service struct {
	// Endpoint of the object storage, e.g. s3.us-east-1.amazonaws.com.
	// A scheme prefix (http:// or https://) is honored; https is the default.
	Endpoint string `toml:"endpoint"`
	// Type selects the backend: s3, oss, minio, cos, oci or fs.
	Type ServiceType `toml:"type"`
	// Bucket name, e.g. my-bucket.
	Bucket string `toml:"bucket"`
	// Prefix under which all benchmark objects are created, e.g. path/to/.
	// For the fs backend this is the root directory.
	Prefix string `toml:"prefix"`
	// Region, where the backend requires one.
	Region    string `toml:"region"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	// VirtualHostedStyle forces bucket.endpoint addressing for
	// S3-compatible backends.
	VirtualHostedStyle bool `toml:"virtual_hosted_style"`

	// OCI-specific settings, ignored by other backends.
	OCIConfigFile string `toml:"oci_config_file"`
	OCIProfile    string `toml:"oci_profile"`
	Namespace     string `toml:"namespace"`
}

// JobConfig describes the workload to run.
type JobConfig struct {
	// NumJobs is the number of parallel workers. Default: 1.
	NumJobs int `toml:"num_jobs"`
	// Workload is the operation under test, upload or download.
	Workload Workload `toml:"workload"`
	// FileSize is the size of each object in bytes.
	FileSize int64 `toml:"file_size"`
	// RunTime is how long the timed loop runs, e.g. "1m".
	RunTime Duration `toml:"run_time"`
	// RateLimit caps operations per second across all workers.
	// 0 means unlimited.
	RateLimit int `toml:"rate_limit"`
}

// Duration wraps time.Duration so TOML values like "30s" or "1m" parse.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// ServiceType is the kind of object storage service.
type ServiceType string

const (
	ServiceS3    ServiceType = "s3"
	ServiceOSS   ServiceType = "oss"
	ServiceMinio ServiceType = "minio"
	ServiceCOS   ServiceType = "cos"
	ServiceOCI   ServiceType = "oci"
	ServiceFS    ServiceType = "fs"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ServiceType) UnmarshalText(text []byte) error {
	switch v := ServiceType(strings.ToLower(string(text))); v {
	case ServiceS3, ServiceOSS, ServiceMinio, ServiceCOS, ServiceOCI, ServiceFS:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid service type: %q", string(text))
	}
}

// Workload is the operation type under test.
type Workload string

const (
	WorkloadUpload   Workload = "upload"
	WorkloadDownload Workload = "download"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Workload) UnmarshalText(text []byte) error {
	switch v := Workload(strings.ToLower(string(text))); v {
	case WorkloadUpload, WorkloadDownload:
		*w = v
		return nil
	default:
		return fmt.Errorf("invalid workload: %q", string(text))
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.Service.Type == "" {
		return fmt.Errorf("service type is required")
	}
	if c.Service.Type != ServiceFS && c.Service.Bucket == "" {
		return fmt.Errorf("bucket is required for service type %q", c.Service.Type)
	}
	switch c.Service.Type {
	case ServiceS3, ServiceOSS, ServiceMinio, ServiceCOS:
		if c.Service.Endpoint == "" {
			return fmt.Errorf("endpoint is required for service type %q", c.Service.Type)
		}
	}
	if c.Job.NumJobs == 0 {
		c.Job.NumJobs = 1
	}
	if c.Job.NumJobs < 0 {
		return fmt.Errorf("num_jobs must be at least 1, got %d", c.Job.NumJobs)
	}
	if c.Job.Workload == "" {
		return fmt.Errorf("workload is required")
	}
	if c.Job.FileSize <= 0 {
		return fmt.Errorf("file_size must be greater than zero, got %d", c.Job.FileSize)
	}
	if c.Job.RunTime <= 0 {
		return fmt.Errorf("run_time must be a positive duration")
	}
	if c.Job.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %d", c.Job.RateLimit)
	}
	return nil
}
