package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Flyrell/ulidkit/internal/config"
	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/spf13/cobra"
)

const knownULID = "01AN4Z07BY79KA1307SR9X4MV3"

// knownMs is the timestamp encoded in knownULID.
const knownMs = 1465824320894

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

type constReader struct{ b byte }

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

// testEngine returns an engine with zero entropy and a clock pinned to knownMs.
func testEngine(opts ...engine.Option) *engine.Engine {
	base := []engine.Option{
		engine.WithEntropy(zeroReader{}),
		engine.WithClock(func() time.Time { return time.UnixMilli(knownMs) }),
	}
	return engine.New(append(base, opts...)...)
}

// testCmd returns a bare command whose context carries default settings with
// the given output format.
func testCmd(output string) (*cobra.Command, *bytes.Buffer) {
	return testCmdWithConfig(output, config.Default())
}

func testCmdWithConfig(output string, cfg config.Config) (*cobra.Command, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(""))
	cmd.SetContext(withSettings(context.Background(), settings{cfg: cfg, output: output}))
	return cmd, stdout
}

// execRoot runs the full command tree in an isolated config environment.
func execRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
