package cmd

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"
)

// PathEnv names the environment variable holding the default script search
// path, a list of directories joined by [os.PathListSeparator].
const PathEnv = "BRIEF_PATH"

// SearchPath returns the directories searched for relative script names:
// the given directories followed by those in [PathEnv]. Entries that are not
// existing directories are dropped.
func SearchPath(dirs ...string) []string {
	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(PathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	if joined == "" {
		return nil
	}

	return filepath.SplitList(joined)
}

func isDir(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
