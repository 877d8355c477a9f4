package ui

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tally/internal/config"
	"tally/internal/domain"
)

func newTestConsole(quiet bool) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := config.New()
	cfg.NoColor = true
	cfg.Quiet = quiet
	return NewConsole(cfg, &buf), &buf
}

func TestFormatter_PrintReport(t *testing.T) {
	console, buf := newTestConsole(false)
	failures := []domain.FailureReport{
		{TestName: "testExternal_testify", Line: 20, SourceText: "    EXPECT_EQ_INT(23, 22);"},
		{TestName: "testExternal_test2", Line: 33, SourceText: "    EXPECT_TRUE(0);"},
	}

	NewFormatter(console).PrintReport(2, slices.Values(failures))

	want := strings.Join([]string{
		"======== testing report ========",
		"failed tests: 2",
		"testExternal_testify: line 20:    EXPECT_EQ_INT(23, 22);",
		"testExternal_test2: line 33:    EXPECT_TRUE(0);",
		"================================",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestFormatter_PrintReportNoFailures(t *testing.T) {
	console, buf := newTestConsole(false)
	NewFormatter(console).PrintReport(0, slices.Values([]domain.FailureReport(nil)))
	if !strings.Contains(buf.String(), "failed tests: 0\n") {
		t.Errorf("expected zero total, got %q", buf.String())
	}
}

func TestFormatter_PrintSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  domain.RunSummary
		expected string
	}{
		{
			name:     "all passed",
			summary:  domain.RunSummary{Tests: []domain.TestSummary{{Name: "a_b"}}},
			expected: "✓ All 1 test(s) passed!\n",
		},
		{
			name: "failures",
			summary: domain.RunSummary{
				Tests:       []domain.TestSummary{{Name: "a_b", Failures: 3}, {Name: "a_c"}},
				TotalFailed: 3,
			},
			expected: "✗ 1 of 2 test(s) failed with 3 assertion failure(s)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console, buf := newTestConsole(false)
			NewFormatter(console).PrintSummary(tt.summary)
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestFormatter_PrintTestList(t *testing.T) {
	console, buf := newTestConsole(false)
	tests := []domain.Test{
		{Name: "parser_empty"},
		{Name: "lexer_eof"},
		{Name: "parser_nested"},
	}

	NewFormatter(console).PrintTestList(slices.Values(tests))

	want := strings.Join([]string{
		"Found 3 test(s) in 2 group(s):",
		"",
		"├── parser",
		"│   ├── empty",
		"│   └── nested",
		"└── lexer",
		"    └── eof",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected list (-want +got):\n%s", diff)
	}
}

func TestFormatter_PrintTestListEmpty(t *testing.T) {
	console, buf := newTestConsole(false)
	NewFormatter(console).PrintTestList(slices.Values([]domain.Test(nil)))
	if buf.String() != "No tests registered\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestConsole_Narration(t *testing.T) {
	console, buf := newTestConsole(false)
	console.Registered("a_b")
	console.Running("a_b")
	console.Passed("a_b", "EXPECT TRUE")
	console.Failed(domain.FailureReport{TestName: "a_b", Kind: "EXPECT EQ INT", Message: "expected 1, got 2"})
	console.FinishedRunning()

	want := strings.Join([]string{
		"adding test: a_b",
		"==============================",
		"",
		"====running a_b====",
		"a_b: EXPECT TRUE PASSED",
		"-> a_b: EXPECT EQ INT FAILED",
		"   expected 1, got 2",
		"==============================",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected narration (-want +got):\n%s", diff)
	}
}

func TestConsole_QuietKeepsWarnings(t *testing.T) {
	console, buf := newTestConsole(true)
	console.Registered("a_b")
	console.Running("a_b")
	console.Passed("a_b", "EXPECT TRUE")
	console.Failed(domain.FailureReport{TestName: "a_b", Kind: "EXPECT TRUE"})
	console.SourceUnavailable(domain.Location{File: "a.go", Line: 3}, errors.New("gone"))

	if buf.String() != "warning: cannot read source of a.go:3: gone\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestErrorViewer(t *testing.T) {
	ev := &ErrorViewer{isTerminal: func() bool { return false }}

	if err := ev.View(nil); err != nil {
		t.Errorf("expected nothing to view, got %v", err)
	}
	err := ev.View([]domain.FailureReport{{TestName: "a_b", Line: 1}})
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected ErrNotTerminal, got %v", err)
	}
}

func TestFormatFailureDetails(t *testing.T) {
	details := formatFailureDetails(domain.FailureReport{
		TestName:   "a_b",
		FilePath:   "/src/a_test.go",
		Line:       12,
		SourceText: "t.ExpectTrue(x[0] == 1)",
		Kind:       "EXPECT TRUE",
	})
	for _, want := range []string{"a_b: EXPECT TRUE FAILED", "/src/a_test.go:12", "t.ExpectTrue(x[0[] == 1)"} {
		if !strings.Contains(details, want) {
			t.Errorf("expected details to contain %q, got %q", want, details)
		}
	}

	missing := formatFailureDetails(domain.FailureReport{TestName: "a_b", Line: 3})
	if !strings.Contains(missing, "source unavailable") {
		t.Errorf("expected placeholder for missing source, got %q", missing)
	}
}
