package snapshots

import (
	"encoding/json"
	"fmt"
	"os"

	"quiet-scores-service/internal/domain"
)

// Store reads persisted scoreboard snapshots.
type Store interface {
	LoadScores(date string) (domain.ScoresResponse, error)
}

// FSStore reads snapshots from the filesystem layout the Writer
// produces.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a snapshot reader rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadScores reads the snapshot for a date.
func (s *FSStore) LoadScores(date string) (domain.ScoresResponse, error) {
	path := ScoreSnapshotPath(s.basePath, date)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ScoresResponse{}, fmt.Errorf("snapshots: read %s: %w", path, err)
	}
	var snapshot domain.ScoresResponse
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.ScoresResponse{}, fmt.Errorf("snapshots: decode %s: %w", path, err)
	}
	return snapshot, nil
}
