package services

import (
	"context"
	"testing"
	"time"

	"studyspots/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoWithLatest(t *testing.T, version string) *fakeSnapshotRepo {
	t.Helper()
	repo := newFakeSnapshotRepo()
	require.NoError(t, repo.Create(context.Background(), domain.NewSnapshot(version, []byte("{}"), 0, time.Now())))
	return repo
}

func TestNextReleaseVersion(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		latest  string // empty means no prior release
		version string
		want    string
		wantErr bool
	}{
		{"explicit version passes through", "1.2.3", "2.0.0", "2.0.0", false},
		{"explicit version without prior releases", "", "1.0.0", "1.0.0", false},
		{"major bump zeroes minor and patch", "1.2.3", "major", "2.0.0", false},
		{"minor bump zeroes patch", "1.2.3", "minor", "1.3.0", false},
		{"patch bump", "1.2.3", "patch", "1.2.4", false},
		{"first release bumps from 0.0.0", "", "patch", "0.0.1", false},
		{"first minor release", "", "minor", "0.1.0", false},
		{"unknown keyword", "1.2.3", "latest", "", true},
		{"empty version", "1.2.3", "", "", true},
		{"partial explicit version", "1.2.3", "1.2", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSnapshotRepo()
			if tt.latest != "" {
				repo = repoWithLatest(t, tt.latest)
			}
			got, err := NextReleaseVersion(ctx, repo, tt.version)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextReleaseVersion_NonSemanticStoredVersion(t *testing.T) {
	repo := repoWithLatest(t, "v1-beta")
	_, err := NextReleaseVersion(context.Background(), repo, "patch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v1-beta")
}
