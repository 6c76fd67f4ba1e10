package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "brief" {
		t.Errorf("Expected Name to be %q, got %q", "brief", Name)
	}

	if Description == "" {
		t.Error("Expected a non-empty Description")
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from VERSION, next to this file.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew" && a.Email == "andrew@ardnew.com"
	}) {
		t.Errorf("Expected Author to contain ardnew, got %v", Author)
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/bin/brief", "brief"},
		{"/tmp/__debug_bin1234", Name},
		{"/tmp/go-build/pkg.test", Name},
		{"C:/bin/brief.exe", "brief"},
		{"/opt/.hidden", "hidden"},
		{"/opt/...", Name},
		{"/home/u/bin/bf", "bf"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := prefixOf(tt.path); got != tt.want {
				t.Errorf("prefixOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestUserDir(t *testing.T) {
	got := userDir(func() (string, error) { return "/xdg", nil }, ".config")
	if got != filepath.Join("/xdg", Prefix()) {
		t.Errorf("userDir = %q", got)
	}

	t.Setenv("HOME", "/home/tester")

	got = userDir(func() (string, error) { return "", errors.New("unset") }, ".cache")
	if got != filepath.Join("/home/tester", ".cache", Prefix()) {
		t.Errorf("userDir fallback = %q", got)
	}
}

func TestError_Chain(t *testing.T) {
	cause := errors.New("permission denied")
	err := ErrConfigDir.Wrap(cause).Wrapf("path %s", "/x")

	if !errors.Is(err, ErrConfigDir) {
		t.Error("derived error does not match sentinel")
	}

	if errors.Is(err, ErrConfigFile) {
		t.Error("derived error matches unrelated sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable")
	}

	want := "cannot create runtime directory: permission denied: path /x"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if len(ErrConfigDir) != 1 {
		t.Errorf("Wrap mutated the sentinel: %v", ErrConfigDir)
	}
}

func TestUnwrapErrors(t *testing.T) {
	inner := errors.New("inner")
	outer := errors.Join(inner)

	chain := UnwrapErrors(outer)
	if len(chain) != 2 || chain[0] != inner {
		t.Errorf("UnwrapErrors = %v", chain)
	}

	if UnwrapErrors(nil) != nil {
		t.Error("UnwrapErrors(nil) should be nil")
	}
}
