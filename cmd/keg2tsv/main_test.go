package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const kegFile = "+D\tKO\n" +
	"#<h2>KEGG Orthology (KO)</h2>\n" +
	"!\n" +
	"#ENTRY\tko00001\n" +
	"#NAME\tKO\n" +
	"A09100 Metabolism\n" +
	"B\n" +
	"B   00001 Metabolism\n" +
	"C   00002 Carbohydrate metabolism code\n" +
	"D K00001 hexokinase\n" +
	"D K00002 glucokinase\n" +
	"!\n"

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KEGG_CONFIG", "")
	os.Unsetenv("KEGG_CONFIG")
}

func TestRun_WritesTSV(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "ko00001.keg")
	if err := os.WriteFile(in, []byte(kegFile), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "mapp_K03.tsv")

	var stderr bytes.Buffer
	if code := run([]string{"--keg_file", in, "--out", out}, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "KO\tGroup\tGeneral Classification\tDescription\n" +
		"K00001\tMetabolism\tCarbohydrate metabolism\thexokinase\n" +
		"K00002\tMetabolism\tCarbohydrate metabolism\tglucokinase\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.keg")
	if err := os.WriteFile(in, []byte(strings.Repeat("#\n", 5)+"C 2 orphan x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "mapp_K03.tsv")

	if code := run([]string{"--keg_file", in, "--out", out}, &bytes.Buffer{}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestRun_MissingFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	code := run([]string{"--keg_file", filepath.Join(dir, "nope.keg"), "--out", filepath.Join(dir, "o.tsv")}, &bytes.Buffer{})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRun_MissingFlag(t *testing.T) {
	clearEnv(t)
	if code := run(nil, &bytes.Buffer{}); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestRun_IgnoresRemoteSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("KEGG_BASE_URL", "not a url")
	dir := t.TempDir()
	in := filepath.Join(dir, "ko00001.keg")
	if err := os.WriteFile(in, []byte(kegFile), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	if code := run([]string{"--keg_file", in, "--out", filepath.Join(dir, "o.tsv")}, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
}

func TestRun_UnknownFlagPrintedOnce(t *testing.T) {
	clearEnv(t)
	var stderr bytes.Buffer
	if code := run([]string{"--keg_file", "k.keg", "--colour"}, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if n := strings.Count(stderr.String(), "flag provided but not defined"); n != 1 {
		t.Errorf("error written %d times, want 1: %q", n, stderr.String())
	}
}
