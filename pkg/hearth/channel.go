package hearth

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SelfUpdateChannel selects which release stream the manager updates itself
// from. The underlying string is the persisted identifier; for this
// enumeration the display label happens to coincide with it.
type SelfUpdateChannel string

const (
	// ChannelStable follows tagged releases.
	ChannelStable SelfUpdateChannel = "Stable"

	// ChannelBeta follows pre-releases.
	ChannelBeta SelfUpdateChannel = "Beta"
)

// DefaultChannel is used when the config records none.
const DefaultChannel = ChannelStable

// Channels returns every update channel in display order.
func Channels() []SelfUpdateChannel {
	return []SelfUpdateChannel{ChannelStable, ChannelBeta}
}

// ParseChannel resolves an identifier to a channel, ignoring case and
// surrounding whitespace.
func ParseChannel(s string) (SelfUpdateChannel, error) {
	id := strings.TrimSpace(s)
	for _, c := range Channels() {
		if strings.EqualFold(id, string(c)) {
			return c, nil
		}
	}
	return "", NewUnknownChannelError(s)
}

// String returns the stable identifier.
func (c SelfUpdateChannel) String() string {
	return string(c)
}

// Label returns the name shown to users.
func (c SelfUpdateChannel) Label() string {
	return string(c)
}

// IsValid reports whether c is a known channel.
func (c SelfUpdateChannel) IsValid() bool {
	return c == ChannelStable || c == ChannelBeta
}

// MarshalYAML writes the canonical identifier.
func (c SelfUpdateChannel) MarshalYAML() (any, error) {
	return string(c), nil
}

// UnmarshalYAML accepts a scalar channel identifier and rejects unknown
// ones.
func (c *SelfUpdateChannel) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported yaml node kind %d for update channel", node.Kind)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decode update channel: %w", err)
	}
	parsed, err := ParseChannel(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
