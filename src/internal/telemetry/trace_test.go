package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
)

func TestSpanWritesStartAndDone(t *testing.T) {
	info, err := Start(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	done := StartSpan("extract.file", "path", "packages.org")
	Event("extract.line", "line", 3, "package", "foo")
	done("status", "ok")
	if _, err := Stop(); err != nil {
		t.Fatalf("unexpected error on stop: %v", err)
	}
	if Enabled() {
		t.Fatal("expected session to be stopped")
	}

	f, err := os.Open(info.TracePath)
	if err != nil {
		t.Fatalf("trace file missing: %v", err)
	}
	defer f.Close()

	var msgs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("invalid trace line %q: %v", scanner.Text(), err)
		}
		msgs = append(msgs, rec["msg"].(string))
	}
	want := []string{"trace.session_start", "extract.file.start", "extract.line", "extract.file.done", "trace.session_stop"}
	if len(msgs) != len(want) {
		t.Fatalf("expected %v, got %v", want, msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, msgs)
		}
	}
}

func TestDisabledSessionIsNoop(t *testing.T) {
	done := StartSpan("extract.file")
	done("status", "ok")
	Event("extract.line")
	if Enabled() {
		t.Fatal("expected no active session")
	}
}

func TestNormalizeKVPadsOddPairs(t *testing.T) {
	out := normalizeKV([]any{"key"})
	if len(out) != 2 || out[1] != "(missing)" {
		t.Fatalf("unexpected fields: %v", out)
	}
}
