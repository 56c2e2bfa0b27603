package hearth

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jlrickert/cli-toolkit/toolkit"
)

// editConfigLive runs the user's editor on the config file and invokes apply
// whenever the file is saved with changed content. Apply failures are
// reported as warnings while the editor stays open; if the editor exits with
// the last save never applied, that failure is returned.
func editConfigLive(ctx context.Context, rt *toolkit.Runtime, path string, apply func([]byte) error) error {
	if rt == nil {
		return fmt.Errorf("runtime is required")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty config path")
	}
	if apply == nil {
		return fmt.Errorf("apply callback is required")
	}

	resolved, err := rt.ResolvePath(path, true)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	diskPath := resolved
	if jail := strings.TrimSpace(rt.GetJail()); jail != "" {
		trimmed := strings.TrimPrefix(resolved, string(filepath.Separator))
		diskPath = filepath.Join(jail, trimmed)
	}

	editor, args, err := editorCommand(rt)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, editor, append(args, diskPath)...)
	stream := rt.Stream()
	cmd.Stdin = stream.In
	cmd.Stdout = stream.Out
	cmd.Stderr = stream.Err
	cmd.Env = rt.Environ()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config file: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file. Editors replace files on save and a
	// watch on the old inode would go stale.
	if err := watcher.Add(filepath.Dir(diskPath)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	var (
		hasHash   bool
		lastHash  [sha256.Size]byte
		attempted bool
		applied   bool
		applyErr  error
	)

	if initial, err := os.ReadFile(diskPath); err == nil {
		lastHash = sha256.Sum256(initial)
		hasHash = true
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read config file: %w", err)
	}

	processSave := func() {
		raw, err := os.ReadFile(diskPath)
		if err != nil {
			if os.IsNotExist(err) {
				return
			}
			attempted = true
			applyErr = fmt.Errorf("unable to read edited config: %w", err)
			_, _ = fmt.Fprintf(stream.Err, "Warning: %v\n", applyErr)
			return
		}

		sum := sha256.Sum256(raw)
		if hasHash && sum == lastHash {
			return
		}
		lastHash = sum
		hasHash = true
		attempted = true

		if err := apply(raw); err != nil {
			applyErr = err
			_, _ = fmt.Fprintf(stream.Err, "Warning: %v\n", err)
			return
		}
		applied = true
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("running editor %q: %w", editor, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var (
		pending     bool
		pendingFrom time.Time
	)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pending && time.Since(pendingFrom) >= 120*time.Millisecond {
				processSave()
				pending = false
			}
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod|fsnotify.Remove) != 0 {
				pending = true
				pendingFrom = time.Now()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			_, _ = fmt.Fprintf(stream.Err, "Warning: config file watcher error: %v\n", watchErr)
		case err := <-done:
			processSave()
			if err != nil {
				return fmt.Errorf("running editor %q: %w", editor, err)
			}
			if attempted && !applied && applyErr != nil {
				return applyErr
			}
			return nil
		case <-ctx.Done():
			err := <-done
			if err != nil {
				return fmt.Errorf("running editor %q: %w", editor, err)
			}
			return ctx.Err()
		}
	}
}

// editorCommand picks the editor from $VISUAL, then $EDITOR, then the
// toolkit default, splitting off any arguments baked into the variable.
func editorCommand(rt *toolkit.Runtime) (string, []string, error) {
	editor := strings.TrimSpace(rt.Get("VISUAL"))
	if editor == "" {
		editor = strings.TrimSpace(rt.Get("EDITOR"))
	}
	if editor == "" {
		editor = toolkit.DefaultEditor
	}

	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("invalid editor command %q", editor)
	}
	return parts[0], parts[1:], nil
}
