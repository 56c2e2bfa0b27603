package hearth

import "github.com/hearthforge/hearth/pkg/wow"

// Addons carries per-flavor addon bookkeeping that lives in the configuration
// file rather than in the game directories themselves.
type Addons struct {
	// Ignored lists addon folder names excluded from update checks, keyed by
	// the flavor they were ignored under.
	Ignored map[wow.Flavor][]string `yaml:"ignored"`
}

// NewAddons returns an Addons with an empty, usable ignore map.
func NewAddons() Addons {
	return Addons{Ignored: map[wow.Flavor][]string{}}
}

// Normalize makes a decoded Addons safe to use by replacing nil maps with
// empty ones.
func (a *Addons) Normalize() {
	if a.Ignored == nil {
		a.Ignored = map[wow.Flavor][]string{}
	}
}

// IsIgnored reports whether the addon folder name is on the ignore list for
// flavor.
func (a *Addons) IsIgnored(flavor wow.Flavor, name string) bool {
	for _, ignored := range a.Ignored[flavor] {
		if ignored == name {
			return true
		}
	}
	return false
}

// Ignore adds the addon folder name to the ignore list for flavor. Adding a
// name twice is a no-op.
func (a *Addons) Ignore(flavor wow.Flavor, name string) {
	if a.IsIgnored(flavor, name) {
		return
	}
	if a.Ignored == nil {
		a.Ignored = map[wow.Flavor][]string{}
	}
	a.Ignored[flavor] = append(a.Ignored[flavor], name)
}

// Unignore removes the addon folder name from the ignore list for flavor.
func (a *Addons) Unignore(flavor wow.Flavor, name string) {
	list := a.Ignored[flavor]
	for i, ignored := range list {
		if ignored == name {
			a.Ignored[flavor] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
