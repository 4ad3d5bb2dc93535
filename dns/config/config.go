package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"gopkg.in/yaml.v3"
)

const RFCFormatting = "rfc3339"

type Config struct {
	LogLevel string        `json:"log_level,omitempty"`
	Logging  LoggingConfig `json:"logging,omitempty"`

	CommandTimeout         DurationJSON `json:"command_timeout,omitempty"`
	CommandKillGracePeriod DurationJSON `json:"command_kill_grace_period,omitempty"`

	Request    RequestConfig    `json:"request"`
	Probe      ProbeConfig      `json:"probe"`
	Metrics    MetricsConfig    `json:"metrics"`
	Resolvectl ResolvectlConfig `json:"resolvectl"`
}

func (c Config) GetLogLevel() (boshlog.LogLevel, error) {
	level, err := boshlog.Levelify(c.LogLevel)
	if err != nil {
		return boshlog.LevelNone, err
	}
	return level, nil
}

func (c Config) UseRFC3339Formatting() bool {
	return strings.EqualFold(c.Logging.Format.TimeStamp, RFCFormatting)
}

type LoggingConfig struct {
	Format FormatConfig `json:"format,omitempty"`
}

type FormatConfig struct {
	TimeStamp string `json:"timestamp,omitempty"`
}

type RequestConfig struct {
	Timeout      DurationJSON `json:"timeout,omitempty"`
	CAFile       string       `json:"ca_file,omitempty"`
	MaxBodyBytes int64        `json:"max_body_bytes,omitempty"`
}

type ProbeConfig struct {
	Enabled bool         `json:"enabled"`
	Timeout DurationJSON `json:"timeout,omitempty"`
	// Host defaults to the host of the requested URL.
	Host    string `json:"host,omitempty"`
	Port    string `json:"port,omitempty"`
	Workers int    `json:"workers,omitempty"`
}

type MetricsConfig struct {
	Textfile string `json:"textfile,omitempty"`
}

type ResolvectlConfig struct {
	FlushCaches bool `json:"flush_caches"`
}

type DurationJSON time.Duration

func (t *DurationJSON) UnmarshalJSON(b []byte) error {
	var s string

	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	timeoutDuration, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*t = DurationJSON(timeoutDuration)

	return nil
}

func (t DurationJSON) MarshalJSON() (b []byte, err error) {
	d := time.Duration(t)
	return []byte(fmt.Sprintf(`"%s"`, d.String())), nil
}

func NewDefaultConfig() Config {
	return Config{
		LogLevel:               boshlog.AsString(boshlog.LevelInfo),
		CommandTimeout:         DurationJSON(10 * time.Second),
		CommandKillGracePeriod: DurationJSON(2 * time.Second),
		Request: RequestConfig{
			Timeout:      DurationJSON(30 * time.Second),
			MaxBodyBytes: 10 * 1024 * 1024,
		},
		Probe: ProbeConfig{
			Timeout: DurationJSON(2 * time.Second),
			Workers: 4,
		},
		Resolvectl: ResolvectlConfig{
			FlushCaches: true,
		},
	}
}

// LoadFromFile reads JSON, or YAML when the file ends in .yml or .yaml, on
// top of the defaults.
func LoadFromFile(configFilePath string) (Config, error) {
	configFileContents, err := os.ReadFile(configFilePath)
	if err != nil {
		return Config{}, err
	}

	switch strings.ToLower(filepath.Ext(configFilePath)) {
	case ".yml", ".yaml":
		configFileContents, err = yamlToJSON(configFileContents)
		if err != nil {
			return Config{}, bosherr.WrapError(err, "Parsing YAML config")
		}
	}

	c := NewDefaultConfig()
	if err := json.Unmarshal(configFileContents, &c); err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	if _, err := c.GetLogLevel(); err != nil {
		return bosherr.WrapError(err, "Invalid log_level")
	}

	for _, d := range []struct {
		name  string
		value DurationJSON
	}{
		{"command_timeout", c.CommandTimeout},
		{"request.timeout", c.Request.Timeout},
		{"probe.timeout", c.Probe.Timeout},
	} {
		if d.value <= 0 {
			return bosherr.Errorf("%s must be positive", d.name)
		}
	}

	if c.CommandKillGracePeriod < 0 {
		return bosherr.Error("command_kill_grace_period must not be negative")
	}

	if c.Probe.Workers < 1 {
		return bosherr.Error("probe.workers must be at least 1")
	}

	if c.Request.MaxBodyBytes < 0 {
		return bosherr.Error("request.max_body_bytes must not be negative")
	}

	return nil
}

func yamlToJSON(contents []byte) ([]byte, error) {
	var document interface{}
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, err
	}

	if document == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(document)
}
