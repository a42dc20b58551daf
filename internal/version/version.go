// Package version provides build information and the per-project version
// stamp for manifest.
package version

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Info contains version information about manifest.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("manifest %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`manifest %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// CompareVersions compares two semantic version strings.
// Returns: 1 if a > b, -1 if a < b, 0 if equal.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := 0; i < 3; i++ {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseVersion parses a version string into major, minor, patch integers.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	var result [3]int
	for i := 0; i < 3 && i < len(parts); i++ {
		// Remove any pre-release suffix (e.g., "-rc1")
		part := strings.Split(parts[i], "-")[0]
		fmt.Sscanf(part, "%d", &result[i])
	}
	return result
}

// ProjectVersion records which manifest version initialized and last used a project directory.
type ProjectVersion struct {
	ManifestVersion string    `json:"manifest_version"`
	InitializedAt   time.Time `json:"initialized_at"`
	LastRunAt       time.Time `json:"last_run_at,omitempty"`
}

// NewerThan reports whether the project was last used by a release newer than current.
// Development builds never compare as older.
func (pv *ProjectVersion) NewerThan(current string) bool {
	if current == "dev" || pv.ManifestVersion == "dev" {
		return false
	}
	return CompareVersions(pv.ManifestVersion, current) > 0
}

// VersionFilePath is the path to the version file within a project.
const VersionFilePath = ".manifest/version.json"

// LoadProjectVersion loads the project version from .manifest/version.json.
func LoadProjectVersion(projectDir string) (*ProjectVersion, error) {
	path := filepath.Join(projectDir, VersionFilePath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pv ProjectVersion
	if err := json.Unmarshal(data, &pv); err != nil {
		return nil, fmt.Errorf("failed to parse version.json: %w", err)
	}

	return &pv, nil
}

// SaveProjectVersion saves the project version to .manifest/version.json.
func SaveProjectVersion(projectDir string, pv *ProjectVersion) error {
	path := filepath.Join(projectDir, VersionFilePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create version directory: %w", err)
	}

	data, err := json.MarshalIndent(pv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal version.json: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// UpdateLastRun updates the last_run_at timestamp, creating the file if needed.
func UpdateLastRun(projectDir, version string) error {
	pv, err := LoadProjectVersion(projectDir)
	if err != nil {
		pv = &ProjectVersion{
			ManifestVersion: version,
			InitializedAt:   time.Now(),
		}
	}
	pv.LastRunAt = time.Now()
	pv.ManifestVersion = version
	return SaveProjectVersion(projectDir, pv)
}
