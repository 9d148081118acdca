package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"

	"github.com/kolkov/uwc"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCountPath(t *testing.T) {
	path := writeFile(t, "plain.txt", "hello world\nsecond line\n")
	counts, err := CountPath(path, uwc.LocaleUTF8, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := uwc.Counts{Lines: 2, Words: 4, Bytes: 24, Chars: 24, MaxLineLength: 11}
	if counts != want {
		t.Errorf("got %+v, want %+v", counts, want)
	}
}

func TestCountPathMissing(t *testing.T) {
	_, err := CountPath(filepath.Join(t.TempDir(), "nope"), uwc.LocaleUTF8, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var ie *uwc.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("error type %T, want *uwc.InputError", err)
	}
	if !strings.Contains(ie.Path, "nope") {
		t.Errorf("path = %q", ie.Path)
	}
}

func TestOpenLZ4(t *testing.T) {
	content := strings.Repeat("compressed words count the same\n", 200)
	path := filepath.Join(t.TempDir(), "data.txt.lz4")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := lz4.NewWriter(f)
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	counts, err := CountPath(path, uwc.LocaleUTF8, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := uwc.Count([]byte(content), uwc.LocaleUTF8)
	if counts != want {
		t.Errorf("lz4 counts %+v, want %+v", counts, want)
	}
}

func TestReadFiles0(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"simple", "a\x00b\x00c", []string{"a", "b", "c"}, false},
		{"trailing nul", "a\x00b\x00", []string{"a", "b"}, false},
		{"empty", "", nil, false},
		{"spaces in names", "with space\x00tab\tname\x00", []string{"with space", "tab\tname"}, false},
		{"interior empty", "a\x00\x00b", nil, true},
		{"leading empty", "\x00a", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFiles0(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("name %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
