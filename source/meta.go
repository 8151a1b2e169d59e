package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"

	"github.com/vectype/vectype/logger"
)

// packageManifest is the subset of package.json the header needs.
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// LibraryVersion resolves a human-readable version string for the analyzed
// library, for embedding in the generated header. It prefers the
// package.json version (validated as semver), annotated with the checkout's
// HEAD short hash when the sources live in a git repository. Best effort:
// returns "" when neither source is available.
func LibraryVersion(dir string) string {
	name, version := manifestVersion(dir)
	rev := headRevision(dir)

	switch {
	case version != "" && rev != "":
		return fmt.Sprintf("%s v%s (%s)", name, version, rev)
	case version != "":
		return fmt.Sprintf("%s v%s", name, version)
	case rev != "":
		return rev
	default:
		return ""
	}
}

// manifestVersion reads package.json from dir or its parent and validates
// the version string. The parent lookup covers the common src/ layout.
func manifestVersion(dir string) (name, version string) {
	for _, path := range []string{
		filepath.Join(dir, "package.json"),
		filepath.Join(dir, "..", "package.json"),
	} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var m packageManifest
		if err := json.Unmarshal(data, &m); err != nil {
			logger.Debugw("Skipping unparseable package manifest", "path", path, "error", err)
			continue
		}
		v, err := semver.NewVersion(m.Version)
		if err != nil {
			logger.Debugw("Skipping non-semver manifest version", "path", path, "version", m.Version)
			continue
		}
		if m.Name == "" {
			m.Name = "library"
		}
		return m.Name, v.String()
	}
	return "", ""
}

// headRevision returns the short HEAD hash of the repository containing
// dir, or "" when dir is not inside a checkout.
func headRevision(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()[:7]
}
