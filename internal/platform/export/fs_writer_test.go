package export_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"forex_backend/internal/platform/export"
)

func TestWriter_WriteCSV(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := export.NewWriter(fs, "exports")

	data := []byte("time,close_usd\n2025-03-03T00:00:00Z,100\n")
	path, err := w.WriteCSV("GSPC_EUR_1d.csv", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join("exports", "GSPC_EUR_1d.csv") {
		t.Errorf("unexpected path %q", path)
	}

	got, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("content mismatch:\ngot  %q\nwant %q", got, data)
	}
}

func TestWriter_WriteCSV_CreatesDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := export.NewWriter(fs, filepath.Join("out", "nested"))

	if _, err := w.WriteCSV("a.csv", []byte("x\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := afero.DirExists(fs, filepath.Join("out", "nested"))
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("expected export directory to be created")
	}
}

func TestWriter_WriteCSV_Overwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	w := export.NewWriter(fs, "exports")

	if _, err := w.WriteCSV("a.csv", []byte("old\n")); err != nil {
		t.Fatal(err)
	}
	path, err := w.WriteCSV("a.csv", []byte("new\n"))
	if err != nil {
		t.Fatal(err)
	}

	got, _ := afero.ReadFile(fs, path)
	if string(got) != "new\n" {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestWriter_WriteCSV_ReadOnlyFS(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := export.NewWriter(fs, "exports")

	if _, err := w.WriteCSV("a.csv", []byte("x\n")); err == nil {
		t.Fatal("expected error on read-only filesystem")
	}
}
