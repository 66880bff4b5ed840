package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"studyspots/internal/domain"
)

var releaseVersionPattern = regexp.MustCompile(`^[0-9]+[.][0-9]+[.][0-9]+$`)

// NextReleaseVersion resolves the version for a new directory release.
// version is either an explicit "X.Y.Z", or one of "major", "minor",
// "patch" to bump the most recent released version (0.0.0 when nothing has
// been released yet). Bumping zeroes the lower components.
func NextReleaseVersion(ctx context.Context, snapshots domain.SnapshotRepository, version string) (string, error) {
	if releaseVersionPattern.MatchString(version) {
		return version, nil
	}

	var major, minor, patch int
	latest, err := snapshots.GetLatest(ctx)
	switch {
	case err == nil:
		if _, serr := fmt.Sscanf(latest.Version, "%d.%d.%d", &major, &minor, &patch); serr != nil {
			return "", fmt.Errorf("stored version %q is not semantic: %w", latest.Version, serr)
		}
	case errors.Is(err, domain.ErrNotFound):
		// First release bumps from 0.0.0.
	default:
		return "", fmt.Errorf("get latest release: %w", err)
	}

	switch version {
	case "major":
		major, minor, patch = major+1, 0, 0
	case "minor":
		minor, patch = minor+1, 0
	case "patch":
		patch++
	default:
		return "", fmt.Errorf(`version must be one of "major", "minor", "patch", or match "X.Y.Z"`)
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}
