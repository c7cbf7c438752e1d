package dbgprint

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const elideMarker = "ZZELIDEMARKERQQ"

func buildElide(t *testing.T, tags ...string) []byte {
	t.Helper()
	gobin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}
	out := filepath.Join(t.TempDir(), "elide")
	args := []string{"build", "-o", out}
	if len(tags) > 0 {
		args = append(args, "-tags", tags[0])
	}
	args = append(args, "./testdata/elide")
	cmd := exec.Command(gobin, args...)
	if msg, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go %v: %v\n%s", args, err, msg)
	}
	bin, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	return bin
}

func TestDebugCallsLeaveNoTrace(t *testing.T) {
	if testing.Short() {
		t.Skip("builds binaries")
	}
	marker := []byte(elideMarker)
	if n := bytes.Count(buildElide(t), marker); n != 0 {
		t.Errorf("release binary contains debug literal %d times", n)
	}
	if n := bytes.Count(buildElide(t, "debug"), marker); n == 0 {
		t.Error("debug binary is missing the debug literal")
	}
}
