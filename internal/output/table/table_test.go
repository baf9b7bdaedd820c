package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type row []string

func (r row) Record() []string { return r }

func readLines(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestWriteHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := Write(path, []string{"Name", "Description", "Class"}, []row{{"A", "B", "C"}})
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if diff := cmp.Diff("Name,Description,Class\nA,B,C\n", readLines(t, path)); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "KEGG_info_results", "ids.csv")
	if err := Write(path, []string{"Name"}, []row{{"x"}}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	// Second write into the existing directory must also succeed.
	if err := Write(path, []string{"Name"}, []row{{"y"}}); err != nil {
		t.Fatalf("second Write error: %v", err)
	}
	if got := readLines(t, path); got != "Name\ny\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestWriteTabDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	err := Write(path, []string{"KO", "Group"}, []row{{"K00001", "Metabolism, general"}}, WithDelimiter('\t'))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if diff := cmp.Diff("KO\tGroup\nK00001\tMetabolism, general\n", readLines(t, path)); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteQuotesEmbeddedDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := Write(path, []string{"Name"}, []row{{"CCR5, CKR5"}, {"say \"hi\""}, {"two\nlines"}})
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	want := "Name\n\"CCR5, CKR5\"\n\"say \"\"hi\"\"\"\n\"two\nlines\"\n"
	if diff := cmp.Diff(want, readLines(t, path)); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(path, []string{"Name", "Description", "Class"}, []row{{"HK", "", ""}}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if got := readLines(t, path); got != "Name,Description,Class\nHK,,\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestAbortLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	out, err := New(path, []string{"Name"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out.Write(row{"x"})
	out.Abort()

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no destination file, stat err = %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected temp file to be removed, found %d entries", len(entries))
	}
}

func TestDestinationAppearsOnlyOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	out, err := New(path, []string{"Name"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := out.Write(row{"x"}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("destination exists before Close")
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}
	if got := readLines(t, path); got != "Name\nx\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestNewFailsOnUnwritableParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(filepath.Join(blocker, "out.csv"), []string{"Name"})
	if err == nil {
		t.Fatal("expected error when parent is a regular file")
	}
}
