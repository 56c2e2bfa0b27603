// Package wow models World of Warcraft installations: the release flavors,
// where each flavor lives on disk, and how the addon and settings directories
// are resolved beneath an installation root. Resolution is best-effort and
// never fails; a missing game directory is an ordinary user state, not an
// error.
package wow

// Wow holds the per-flavor installation directories recorded in the user's
// configuration. Detection of installations happens elsewhere; this type only
// stores what it is given and derives paths from it.
type Wow struct {
	// Directories maps a flavor to its recorded installation directory,
	// for example retail -> /games/World of Warcraft/_retail_.
	Directories map[Flavor]string `yaml:"directories"`
}

// NewWow returns a Wow with an empty, usable directory map.
func NewWow() Wow {
	return Wow{Directories: map[Flavor]string{}}
}

// Normalize makes a decoded Wow safe to use by replacing nil maps with empty
// ones.
func (w *Wow) Normalize() {
	if w.Directories == nil {
		w.Directories = map[Flavor]string{}
	}
}

// Directory returns the recorded installation directory for flavor. The
// second return is false when no directory is recorded.
func (w *Wow) Directory(flavor Flavor) (string, bool) {
	dir, ok := w.Directories[flavor]
	return dir, ok
}
