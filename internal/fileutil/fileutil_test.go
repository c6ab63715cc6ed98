package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTextFile(t *testing.T) {
	t.Parallel()

	t.Run("plain file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "input.txt")
		if err := os.WriteFile(path, []byte("mi ŝatas kafon"), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := ReadTextFile(path)
		if err != nil {
			t.Fatalf("ReadTextFile() error = %v", err)
		}
		if got != "mi ŝatas kafon" {
			t.Errorf("ReadTextFile() = %q", got)
		}
	})

	t.Run("strips leading BOM", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bom.txt")
		if err := os.WriteFile(path, []byte("\uFEFFsaluton"), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := ReadTextFile(path)
		if err != nil {
			t.Fatalf("ReadTextFile() error = %v", err)
		}
		if got != "saluton" {
			t.Errorf("ReadTextFile() = %q, want BOM stripped", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := ReadTextFile(filepath.Join(t.TempDir(), "absent.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadTextFile() error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("creates and cleans up", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := WriteTempFile("<html></html>", "html")
		if err != nil {
			t.Fatalf("WriteTempFile() error = %v", err)
		}
		if !strings.HasSuffix(path, ".html") {
			t.Errorf("temp path %q missing extension", path)
		}

		content, err := os.ReadFile(path) // #nosec G304 -- test-created path
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(content) != "<html></html>" {
			t.Errorf("temp content = %q", content)
		}

		cleanup()
		if FileExists(path) {
			t.Error("cleanup did not remove the temp file")
		}
	})

	t.Run("rejects bad extension", func(t *testing.T) {
		t.Parallel()

		if _, _, err := WriteTempFile("x", ""); !errors.Is(err, ErrExtensionEmpty) {
			t.Errorf("empty extension error = %v, want ErrExtensionEmpty", err)
		}
		if _, _, err := WriteTempFile("x", "a/b"); !errors.Is(err, ErrExtensionPathTraversal) {
			t.Errorf("separator extension error = %v, want ErrExtensionPathTraversal", err)
		}
	})
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		wantErr error
	}{
		{name: "html", ext: "html", wantErr: nil},
		{name: "txt", ext: "txt", wantErr: nil},
		{name: "empty", ext: "", wantErr: ErrExtensionEmpty},
		{name: "slash", ext: "a/b", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", ext: `a\b`, wantErr: ErrExtensionPathTraversal},
		{name: "null byte", ext: "a\x00b", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.ext)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists() = false for an existing file")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists() = true for a missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	if !IsFilePath("dir/file.txt") || !IsFilePath(`dir\file.txt`) {
		t.Error("IsFilePath() = false for paths with separators")
	}
	if IsFilePath("name") {
		t.Error("IsFilePath() = true for a bare name")
	}
}
