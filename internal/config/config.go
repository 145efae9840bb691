package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Options carries runtime knobs for hostsnap. The defaults match a plain
// invocation; a YAML file and environment variables can override them.
type Options struct {
	SampleWindowSec     float64  `yaml:"sample_window_sec"`
	TopN                int      `yaml:"top_n"`
	AuthLogPaths        []string `yaml:"auth_log_paths"`
	FailedLoginPattern  string   `yaml:"failed_login_pattern"`
	ExcludedFilesystems []string `yaml:"excluded_filesystems"`
	NVMeSysfsRoot       string   `yaml:"nvme_sysfs_root"`
	JSON                bool     `yaml:"-"`
}

func Default() Options {
	return Options{
		SampleWindowSec:     1.0,
		TopN:                5,
		AuthLogPaths:        []string{"/var/log/auth.log", "/var/log/secure"},
		FailedLoginPattern:  "Failed password",
		ExcludedFilesystems: []string{"tmpfs", "devtmpfs", "squashfs"},
		NVMeSysfsRoot:       "/sys/class/nvme",
	}
}

// Load builds Options from defaults, an optional YAML file, and env
// overrides, in that order.
func Load(path string) (Options, error) {
	opts := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("HOSTSNAP_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.SampleWindowSec = d.Seconds()
		}
	}
	if v := os.Getenv("HOSTSNAP_TOPN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.TopN = n
		}
	}

	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return opts, fmt.Errorf("invalid config: %w", err)
	}
	return opts, nil
}

func (o *Options) applyDefaults() {
	def := Default()
	if o.SampleWindowSec == 0 {
		o.SampleWindowSec = def.SampleWindowSec
	}
	if o.TopN == 0 {
		o.TopN = def.TopN
	}
	if len(o.AuthLogPaths) == 0 {
		o.AuthLogPaths = def.AuthLogPaths
	}
	if o.FailedLoginPattern == "" {
		o.FailedLoginPattern = def.FailedLoginPattern
	}
	if len(o.ExcludedFilesystems) == 0 {
		o.ExcludedFilesystems = def.ExcludedFilesystems
	}
	if o.NVMeSysfsRoot == "" {
		o.NVMeSysfsRoot = def.NVMeSysfsRoot
	}
}

func (o *Options) validate() error {
	if o.SampleWindowSec <= 0 {
		return fmt.Errorf("sample_window_sec must be positive")
	}
	if o.TopN <= 0 {
		return fmt.Errorf("top_n must be positive")
	}
	return nil
}

// SampleWindow is the wall-clock interval over which CPU and process
// utilization deltas are measured.
func (o Options) SampleWindow() time.Duration {
	return time.Duration(o.SampleWindowSec * float64(time.Second))
}
