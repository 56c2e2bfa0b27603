package hearth

import (
	"bytes"
	"fmt"

	"github.com/hearthforge/hearth/pkg/wow"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"gopkg.in/yaml.v3"
)

// CatalogSource names the addon catalog the catalog tab reads from. The value
// is an opaque token carried through the file untouched.
type CatalogSource string

// WindowSize is the remembered main window geometry. On the wire it is a two
// element [width, height] sequence.
type WindowSize struct {
	Width  int
	Height int
}

// MarshalYAML implements yaml.Marshaler.
func (s WindowSize) MarshalYAML() (any, error) {
	return []int{s.Width, s.Height}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Anything other than a two
// element sequence of integers is rejected.
func (s *WindowSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("window_size must be a [width, height] sequence, got yaml node kind %d", node.Kind)
	}
	var raw []int
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode window_size: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("window_size must hold exactly two values, got %d", len(raw))
	}
	s.Width = raw[0]
	s.Height = raw[1]
	return nil
}

// Config is the whole persisted configuration. Field order matches the order
// keys are written to disk; keys stay snake_case and are always emitted so a
// saved default reads as a complete, self-documenting document.
//
// Every field decodes with a default, so any subset of keys on disk yields a
// fully populated value. Unknown keys are ignored on read.
type Config struct {
	Wow wow.Wow `yaml:"wow"`

	Addons Addons `yaml:"addons"`

	// Theme is the name of the selected UI theme. Nil means the built-in
	// default.
	Theme *string `yaml:"theme"`

	ColumnConfig ColumnConfig `yaml:"column_config"`

	// WindowSize is the last recorded window geometry, if any.
	WindowSize *WindowSize `yaml:"window_size"`

	// Scale is the UI scale factor, if the user changed it.
	Scale *float64 `yaml:"scale"`

	// BackupDirectory is where backup archives are written, if configured.
	BackupDirectory *string `yaml:"backup_directory"`

	BackupAddons bool `yaml:"backup_addons"`
	BackupWTF    bool `yaml:"backup_wtf"`

	HideIgnoredAddons bool `yaml:"hide_ignored_addons"`

	SelfUpdateChannel SelfUpdateChannel `yaml:"self_update_channel"`

	// WeakAurasAccount records which WoW account's WeakAuras data to manage,
	// per flavor.
	WeakAurasAccount map[wow.Flavor]string `yaml:"weak_auras_account"`

	AlternatingRowColors bool `yaml:"alternating_row_colors"`

	Language Language `yaml:"language"`

	CatalogSource *CatalogSource `yaml:"catalog_source"`

	AutoUpdate bool `yaml:"auto_update"`
}

// DefaultConfig returns the configuration used when nothing is on disk yet.
// Every field carries its documented default; maps are non-nil.
func DefaultConfig() *Config {
	return &Config{
		Wow:                  wow.NewWow(),
		Addons:               NewAddons(),
		ColumnConfig:         DefaultColumnConfig(),
		SelfUpdateChannel:    DefaultChannel,
		WeakAurasAccount:     map[wow.Flavor]string{},
		AlternatingRowColors: true,
		Language:             DefaultLanguage,
	}
}

// ParseConfig parses raw YAML into a Config. Decoding starts from the default
// configuration, so keys absent from raw keep their default values while
// present keys overwrite them. This is what keeps alternating_row_colors true
// when the key is missing but false when the file says so.
func ParseConfig(raw []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize restores the invariants a zero-value or partially decoded Config
// may lack: non-nil maps and defaulted enum fields. A null column_config in
// the file zeroes the field, so the default layout is restored here too.
func (c *Config) Normalize() {
	c.Wow.Normalize()
	c.Addons.Normalize()
	if c.WeakAurasAccount == nil {
		c.WeakAurasAccount = map[wow.Flavor]string{}
	}
	if c.ColumnConfig.Version == "" {
		c.ColumnConfig = DefaultColumnConfig()
	}
	if c.SelfUpdateChannel == "" {
		c.SelfUpdateChannel = DefaultChannel
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
}

// ToYAML serializes the Config to YAML bytes with 2-space indentation.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("no config")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes the Config and writes it to path atomically. The parent
// directory must already exist.
func (c *Config) Write(rt *toolkit.Runtime, path string) error {
	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	if err := rt.AtomicWriteFile(path, data, 0o644); err != nil {
		return NewFilesystemError("write", path, err)
	}
	return nil
}
