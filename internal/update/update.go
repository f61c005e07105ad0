// Package update checks GitHub Releases for newer studio builds and
// replaces the running binary.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned when asked to replace a build without a release
// version.
var ErrDevBuild = errors.New("cannot update a development build; install a release first")

// Release describes a published release.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

func isDev(version string) bool {
	return version == "" || version == "dev"
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// CheckForUpdate returns the latest release of repo when it is newer than
// currentVersion, and nil otherwise. Development and unparseable versions
// never report an update.
func CheckForUpdate(currentVersion, repo string) (*Release, error) {
	if isDev(currentVersion) {
		return nil, nil
	}
	current, err := parseSemver(currentVersion)
	if err != nil {
		return nil, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}
	if CompareVersions(current.String(), latest.Version()) >= 0 {
		return nil, nil
	}
	return &Release{Version: latest.Version(), URL: latest.URL, ReleaseNotes: latest.ReleaseNotes}, nil
}

// Apply downloads the latest release and replaces the current executable.
func Apply(currentVersion, repo string) (*Release, error) {
	if isDev(currentVersion) {
		return nil, ErrDevBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(currentVersion, "v"), selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &Release{Version: rel.Version(), URL: rel.URL, ReleaseNotes: rel.ReleaseNotes}, nil
}

// CompareVersions compares two semver strings: -1 if current < latest, 0
// if equal, 1 if current > latest. An unparseable version sorts before
// any valid one.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseSemver strips a leading "v". Git-describe versions such as
// "0.1.0-3-gabcdef" parse as prereleases of their base version.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
