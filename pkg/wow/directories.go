package wow

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// AddonDirectory resolves the directory holding installed addons for flavor,
// conventionally `<root>/Interface/AddOns`. The second return is false only
// when no installation directory is recorded for flavor.
//
// Users and some filesystems change letter casing, so when the exact path is
// missing a case-insensitive search runs beneath the root and an existing
// case-variant wins. When nothing matches but the root itself exists the
// expected tree is created; creation failure is tolerated and the expected
// path is returned anyway, so callers must re-check existence before use.
// A fresh game install that has never been launched has no Interface tree,
// which is exactly the state the creation step covers.
func (w *Wow) AddonDirectory(rt *toolkit.Runtime, flavor Flavor) (string, bool) {
	root, ok := w.Directory(flavor)
	if !ok {
		return "", false
	}

	dir := filepath.Join(root, "Interface", "AddOns")
	if !pathExists(rt, dir) {
		if match, found := findCaseVariant(rt, root, "Interface", "AddOns"); found {
			dir = match
		}
	}

	if pathExists(rt, root) && !pathExists(rt, dir) {
		_ = rt.Mkdir(dir, 0o755, true)
	}

	return dir, true
}

// WTFDirectory resolves the game's account settings directory for flavor,
// conventionally `<root>/WTF`, applying the same case-insensitive fallback
// as AddonDirectory. It never creates the directory: the WTF tree belongs to
// the game, and conjuring one up would mask a broken installation. The
// returned path may not exist.
func (w *Wow) WTFDirectory(rt *toolkit.Runtime, flavor Flavor) (string, bool) {
	root, ok := w.Directory(flavor)
	if !ok {
		return "", false
	}

	dir := filepath.Join(root, "WTF")
	if !pathExists(rt, dir) {
		if match, found := findCaseVariant(rt, root, "WTF"); found {
			dir = match
		}
	}

	return dir, true
}

// DownloadDirectory returns where downloaded archives are staged for flavor:
// the recorded installation directory itself, unmodified.
func (w *Wow) DownloadDirectory(flavor Flavor) (string, bool) {
	return w.Directory(flavor)
}

// RootDirectory returns the directory one level above the recorded flavor
// directory, i.e. the game installation shared by all flavors. Recorded
// directories are always flavor folders inside an installation; a recorded
// path with no parent violates that invariant and panics rather than being
// papered over.
func (w *Wow) RootDirectory(flavor Flavor) (string, bool) {
	dir, ok := w.Directory(flavor)
	if !ok {
		return "", false
	}
	parent := filepath.Dir(dir)
	if parent == dir {
		panic(fmt.Sprintf("wow: recorded directory %q for flavor %s has no parent", dir, flavor))
	}
	return parent, true
}

// FlavorDirectory joins the flavor's folder token onto base, yielding the
// conventional installation directory for flavor under a game root.
func FlavorDirectory(flavor Flavor, base string) string {
	return filepath.Join(base, flavor.FolderName())
}

// findCaseVariant searches beneath root for an existing entry whose relative
// path equals the given components ignoring case. Filesystem enumeration
// order is not stable across platforms, so candidates are sorted and the
// first match wins to keep resolution reproducible.
func findCaseVariant(rt *toolkit.Runtime, root string, parts ...string) (string, bool) {
	stars := make([]string, len(parts))
	for i := range stars {
		stars[i] = "*"
	}
	pattern := filepath.Join(append([]string{root}, stars...)...)

	candidates, err := rt.Glob(pattern)
	if err != nil || len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)

	want := strings.Join(parts, "/")
	for _, candidate := range candidates {
		rel, relErr := filepath.Rel(root, candidate)
		if relErr != nil {
			continue
		}
		if strings.EqualFold(filepath.ToSlash(rel), want) {
			return candidate, true
		}
	}
	return "", false
}

func pathExists(rt *toolkit.Runtime, path string) bool {
	_, err := rt.Stat(path, false)
	return err == nil
}
