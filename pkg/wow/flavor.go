package wow

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flavor identifies a distinct World of Warcraft release variant. Each flavor
// owns one installation directory on disk, named by a fixed folder token the
// game launcher creates (for example `_retail_`).
//
// The underlying string is the stable identifier written to the config file.
// Identifiers are forever: a flavor may be added but never renamed or removed,
// because persisted configs reference flavors by these identifiers.
type Flavor string

const (
	// Retail is the current mainline release.
	Retail Flavor = "retail"

	// RetailPTR is the public test realm for the mainline release.
	RetailPTR Flavor = "retail_ptr"

	// RetailBeta is the beta channel for the mainline release.
	RetailBeta Flavor = "retail_beta"

	// Classic is the progression classic release.
	Classic Flavor = "classic"

	// ClassicPTR is the public test realm for classic.
	ClassicPTR Flavor = "classic_ptr"

	// ClassicEra is the frozen vanilla-era release.
	ClassicEra Flavor = "classic_era"
)

// Flavors returns every known flavor in display order. The slice is freshly
// allocated; callers may reorder or filter it.
func Flavors() []Flavor {
	return []Flavor{
		Retail,
		RetailPTR,
		RetailBeta,
		Classic,
		ClassicPTR,
		ClassicEra,
	}
}

// ParseFlavor resolves an identifier to a Flavor. Matching is
// case-insensitive and ignores surrounding whitespace so CLI arguments like
// "Retail" resolve, but the canonical identifier is always the lowercase
// form. Unknown identifiers return an UnknownFlavorError.
func ParseFlavor(s string) (Flavor, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Flavors() {
		if id == string(f) {
			return f, nil
		}
	}
	return "", NewUnknownFlavorError(s)
}

// String returns the stable identifier.
func (f Flavor) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known flavors.
func (f Flavor) IsValid() bool {
	for _, known := range Flavors() {
		if f == known {
			return true
		}
	}
	return false
}

// Label returns the name shown to users. Distinct from the identifier, which
// is a serialization concern.
func (f Flavor) Label() string {
	switch f {
	case Retail:
		return "Retail"
	case RetailPTR:
		return "Retail PTR"
	case RetailBeta:
		return "Retail Beta"
	case Classic:
		return "Classic"
	case ClassicPTR:
		return "Classic PTR"
	case ClassicEra:
		return "Classic Era"
	default:
		return string(f)
	}
}

// FolderName returns the installation folder token the game launcher uses for
// this flavor. Tokens are fixed by the game, not by this tool.
func (f Flavor) FolderName() string {
	switch f {
	case Retail:
		return "_retail_"
	case RetailPTR:
		return "_ptr_"
	case RetailBeta:
		return "_beta_"
	case Classic:
		return "_classic_"
	case ClassicPTR:
		return "_classic_ptr_"
	case ClassicEra:
		return "_classic_era_"
	default:
		return string(f)
	}
}

// MarshalYAML writes the canonical identifier.
func (f Flavor) MarshalYAML() (any, error) {
	return string(f), nil
}

// UnmarshalYAML accepts a scalar flavor identifier. Unknown identifiers are
// an error so a config naming a flavor this build does not know is rejected
// as a whole rather than silently misread.
func (f *Flavor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported yaml node kind %d for flavor", node.Kind)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decode flavor: %w", err)
	}
	parsed, err := ParseFlavor(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
