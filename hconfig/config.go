// Package hconfig decodes and validates genheap configuration: the fixed
// region capacities and tunables a Heap is constructed with, plus an
// optional file-backed loader and hot-reload watcher for the subset of
// fields that are safe to change between collections.
package hconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// CurrentSchemaVersion is the config schema this build understands.
const CurrentSchemaVersion = "1.0.0"

// supportedRange is the schema version whose major number Validate
// accepts: any schema_version with the same major version is compatible.
// Bumped only on a breaking change to the Config fields below.
var supportedRange = semver.MustParse("1.0.0")

// Config describes the heap a host wants constructed. EdenMax,
// SurvivorMax, TenuredMax and PermMax must all be strictly positive;
// AgeCycles and GCDelay are interpreted exactly as spec.md ยง6 describes.
type Config struct {
	// SchemaVersion tags which revision of this struct's fields a
	// decoded config was written against. Empty defaults to
	// CurrentSchemaVersion at Validate time.
	SchemaVersion string `json:"schema_version"`

	EdenMax     uint32 `json:"eden_max"`
	SurvivorMax uint32 `json:"survivor_max"`
	TenuredMax  uint32 `json:"tenured_max"`
	PermMax     uint32 `json:"perm_max"`

	AgeCycles uint8 `json:"age_cycles"`
	GCDelay   uint8 `json:"gc_delay"`

	// UseMmap selects an anonymous-mmap-backed arena instead of a plain
	// Go allocation. See backing.NewMappedBuffer.
	UseMmap bool `json:"use_mmap"`
}

// Validate checks region capacities are positive and the schema version,
// if present, is one this build supports.
func (c *Config) Validate() error {
	if c.EdenMax == 0 || c.SurvivorMax == 0 || c.TenuredMax == 0 || c.PermMax == 0 {
		return fmt.Errorf("hconfig: all region capacities must be positive (eden=%d survivor=%d tenured=%d perm=%d)",
			c.EdenMax, c.SurvivorMax, c.TenuredMax, c.PermMax)
	}

	v := c.SchemaVersion
	if v == "" {
		v = CurrentSchemaVersion
	}

	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("hconfig: invalid schema_version %q: %w", v, err)
	}

	if parsed.Major() != supportedRange.Major() {
		return fmt.Errorf("hconfig: schema_version %s is not compatible with supported major version %d",
			v, supportedRange.Major())
	}

	return nil
}

// Load reads and decodes a JSON config file, then validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hconfig: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("hconfig: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
