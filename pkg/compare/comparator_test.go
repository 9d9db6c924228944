package compare

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sdejongh/resultdiff/pkg/models"
	"github.com/sdejongh/resultdiff/pkg/storage"
)

// TestHelper provides utilities for comparator tests
type TestHelper struct {
	t           *testing.T
	expectedDir string
	actualDir   string
	expected    *storage.Local
	actual      *storage.Local
}

// NewTestHelper creates a new test helper with temporary directories
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	tempDir := t.TempDir()
	expectedDir := filepath.Join(tempDir, "jobs")
	actualDir := filepath.Join(tempDir, "results")

	for _, dir := range []string{expectedDir, actualDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
	}

	expected, err := storage.NewLocal(expectedDir)
	if err != nil {
		t.Fatalf("failed to create expected backend: %v", err)
	}
	actual, err := storage.NewLocal(actualDir)
	if err != nil {
		t.Fatalf("failed to create actual backend: %v", err)
	}

	return &TestHelper{
		t:           t,
		expectedDir: expectedDir,
		actualDir:   actualDir,
		expected:    expected,
		actual:      actual,
	}
}

// CreateExpectedFile creates a file in the expected directory
func (h *TestHelper) CreateExpectedFile(name string, content []byte) {
	h.t.Helper()
	if err := os.WriteFile(filepath.Join(h.expectedDir, name), content, 0644); err != nil {
		h.t.Fatalf("failed to create expected file: %v", err)
	}
}

// CreateActualFile creates a file in the actual directory
func (h *TestHelper) CreateActualFile(name string, content []byte) {
	h.t.Helper()
	if err := os.WriteFile(filepath.Join(h.actualDir, name), content, 0644); err != nil {
		h.t.Fatalf("failed to create actual file: %v", err)
	}
}

func comparators() []Comparator {
	return []Comparator{
		NewTextComparator(),
		NewBinaryComparator(4096),
	}
}

func TestComparators(t *testing.T) {
	largeA := bytes.Repeat([]byte("line of text\n"), 2000)
	largeB := append([]byte(nil), largeA...)
	largeB[len(largeB)-3] = 'X'

	tests := []struct {
		name     string
		expected []byte
		actual   []byte
		want     models.ComparisonResult
	}{
		{"Identical", []byte("1\n2\n3\n"), []byte("1\n2\n3\n"), models.ResultEqual},
		{"BothEmpty", []byte{}, []byte{}, models.ResultEqual},
		{"OneByte", []byte("1\n2\n3\n"), []byte("1\n9\n3\n"), models.ResultDifferent},
		{"TrailingWhitespace", []byte("1\n"), []byte("1 \n"), models.ResultDifferent},
		{"LineEndings", []byte("1\n2\n"), []byte("1\r\n2\r\n"), models.ResultDifferent},
		{"MissingFinalNewline", []byte("1\n2\n"), []byte("1\n2"), models.ResultDifferent},
		{"LargeIdentical", largeA, largeA, models.ResultEqual},
		{"LargeDifferAtEnd", largeA, largeB, models.ResultDifferent},
	}

	for _, c := range comparators() {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				h := NewTestHelper(t)
				h.CreateExpectedFile("a.out", tt.expected)
				h.CreateActualFile("a.result", tt.actual)

				comp, err := c.Compare(context.Background(), h.expected, h.actual, "a.out", "a.result")
				if err != nil {
					t.Fatalf("Compare() error = %v", err)
				}
				if comp.Result != tt.want {
					t.Errorf("Result = %s, want %s (reason: %s)", comp.Result, tt.want, comp.Reason)
				}
				if comp.ExpectedName != "a.out" || comp.ActualName != "a.result" {
					t.Errorf("names = %s/%s, want a.out/a.result", comp.ExpectedName, comp.ActualName)
				}
			})
		}
	}
}

func TestComparators_ReadError(t *testing.T) {
	for _, c := range comparators() {
		t.Run(c.Name()+"/MissingActual", func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateExpectedFile("a.out", []byte("1\n"))

			comp, err := c.Compare(context.Background(), h.expected, h.actual, "a.out", "a.result")
			if err != nil {
				t.Fatalf("Compare() should not return an error for unreadable files, got %v", err)
			}
			if comp.Result != models.ResultReadError {
				t.Errorf("Result = %s, want %s", comp.Result, models.ResultReadError)
			}
			if comp.Result.Equal() {
				t.Error("a read error must never count as equal")
			}
			if comp.Err == nil {
				t.Error("Err should carry the read failure")
			}
		})

		t.Run(c.Name()+"/MissingExpected", func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateActualFile("a.result", []byte("1\n"))

			comp, err := c.Compare(context.Background(), h.expected, h.actual, "a.out", "a.result")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if comp.Result != models.ResultReadError {
				t.Errorf("Result = %s, want %s", comp.Result, models.ResultReadError)
			}
		})

		t.Run(c.Name()+"/Directory", func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateExpectedFile("a.out", []byte("1\n"))
			if err := os.Mkdir(filepath.Join(h.actualDir, "a.result"), 0755); err != nil {
				t.Fatalf("failed to create dir: %v", err)
			}

			comp, err := c.Compare(context.Background(), h.expected, h.actual, "a.out", "a.result")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if comp.Result.Equal() {
				t.Errorf("Result = %s, a directory must not compare equal", comp.Result)
			}
		})
	}
}

func TestComparators_Unreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced here")
	}

	for _, c := range comparators() {
		t.Run(c.Name(), func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateExpectedFile("a.out", []byte("1\n"))
			h.CreateActualFile("a.result", []byte("1\n"))
			if err := os.Chmod(filepath.Join(h.actualDir, "a.result"), 0000); err != nil {
				t.Fatalf("chmod failed: %v", err)
			}

			comp, err := c.Compare(context.Background(), h.expected, h.actual, "a.out", "a.result")
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if comp.Result != models.ResultReadError {
				t.Errorf("Result = %s, want %s", comp.Result, models.ResultReadError)
			}
		})
	}
}

func TestComparators_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, c := range comparators() {
		t.Run(c.Name(), func(t *testing.T) {
			h := NewTestHelper(t)
			h.CreateExpectedFile("a.out", []byte("1\n"))
			h.CreateActualFile("a.result", []byte("1\n"))

			if _, err := c.Compare(ctx, h.expected, h.actual, "a.out", "a.result"); err == nil {
				t.Error("Compare() should fail with a cancelled context")
			}
		})
	}
}

func TestBinaryComparator_Reason(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateExpectedFile("a.out", []byte("abcdef"))
	h.CreateActualFile("a.result", []byte("abcXef"))
	h.CreateExpectedFile("b.out", []byte("abc"))
	h.CreateActualFile("b.result", []byte("abcd"))

	c := NewBinaryComparator(0)
	ctx := context.Background()

	comp, err := c.Compare(ctx, h.expected, h.actual, "a.out", "a.result")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !strings.Contains(comp.Reason, "offset 3") {
		t.Errorf("Reason = %q, want offset 3", comp.Reason)
	}

	comp, err = c.Compare(ctx, h.expected, h.actual, "b.out", "b.result")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !strings.Contains(comp.Reason, "size mismatch") {
		t.Errorf("Reason = %q, want size mismatch", comp.Reason)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		method  models.ComparisonMethod
		want    string
		wantErr bool
	}{
		{models.CompareText, "text", false},
		{models.CompareBinary, "binary", false},
		{models.ComparisonMethod("md5"), "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			c, err := New(tt.method, 65536)
			if tt.wantErr {
				if err == nil {
					t.Error("New() should fail for unsupported method")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if c.Name() != tt.want {
				t.Errorf("Name() = %s, want %s", c.Name(), tt.want)
			}
		})
	}
}
