package hearth_test

import (
	"context"
	"embed"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/hearthforge/hearth/pkg/log"
	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/sandbox"
)

//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash("/home/testuser"),
			User: "testuser",
		}, opts...)
}

// newTestContext wires a capturing logger into the sandbox context so tests
// can assert on logged behavior.
func newTestContext(t *testing.T, sb *sandbox.Sandbox) (context.Context, *log.TestHandler) {
	lg, th := log.NewTestLogger(t, slog.LevelDebug)
	return mylog.WithLogger(sb.Context(), lg), th
}
