package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// ErrVersionExists marks an attempt to release an already-released version.
var ErrVersionExists = errors.New("version already released")

// Snapshot is one validated directory release as persisted. Only documents
// that passed validation are ever snapshotted.
type Snapshot struct {
	ID        string
	Version   string // semantic major.minor.patch
	Document  []byte // raw document bytes as ingested
	Checksum  string // sha256 hex of Document
	SpotCount int
	CreatedAt time.Time
}

// NewSnapshot returns a Snapshot for the given release, computing the
// document checksum. ID is typically set by the repository on create.
func NewSnapshot(version string, document []byte, spotCount int, createdAt time.Time) *Snapshot {
	sum := sha256.Sum256(document)
	return &Snapshot{
		Version:   version,
		Document:  document,
		Checksum:  hex.EncodeToString(sum[:]),
		SpotCount: spotCount,
		CreatedAt: createdAt,
	}
}

// SnapshotRepository defines the interface for directory release storage
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *Snapshot) error
	GetByVersion(ctx context.Context, version string) (*Snapshot, error)
	// GetLatest returns the snapshot with the highest major.minor.patch
	// version, or ErrNotFound when nothing has been released.
	GetLatest(ctx context.Context) (*Snapshot, error)
	ListVersions(ctx context.Context) ([]string, error)
}
