package deps

import (
	"strings"
	"testing"

	"subburn/internal/testsupport"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "Ghost", Command: "definitely-not-a-real-binary-8161"},
		{Name: "Blank", Command: "  "},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if !strings.Contains(statuses[0].Detail, "not found") {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
	if statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", statuses[1].Detail)
	}
}

func TestVerifyPassesWithStubbedBinaries(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	if err := Verify(cfg); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyNamesMissingBinaries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	t.Setenv("PATH", t.TempDir())
	err := Verify(cfg)
	if err == nil {
		t.Fatal("expected error with empty PATH")
	}
	if !strings.Contains(err.Error(), "ffmpeg") || !strings.Contains(err.Error(), "whisper") {
		t.Fatalf("error should name both binaries: %v", err)
	}
}
