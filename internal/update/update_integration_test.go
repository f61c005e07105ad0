//go:build integration

package update

import (
	"os"
	"testing"
)

// Set STUDIO_UPDATE_REPO to an owner/name slug with published releases.
func TestCheckForUpdateIntegration(t *testing.T) {
	repo := os.Getenv("STUDIO_UPDATE_REPO")
	if repo == "" {
		t.Skip("STUDIO_UPDATE_REPO not set")
	}

	rel, err := CheckForUpdate("0.0.1", repo)
	if err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if rel == nil || rel.Version == "" {
		t.Fatalf("expected a newer release than 0.0.1, got %+v", rel)
	}

	latest, err := CheckForUpdate("v"+rel.Version, repo)
	if err != nil {
		t.Fatalf("CheckForUpdate(latest): %v", err)
	}
	if latest != nil {
		t.Errorf("the latest release should be up to date, got %+v", latest)
	}
}
