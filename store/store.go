package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Breoliveira30/DevDuo/errs"
	"github.com/Breoliveira30/DevDuo/models"
)

// snapshotKey is the single key under which the project sequence is mirrored.
const snapshotKey = "projects"

// Store owns the authoritative in-memory sequence of projects for the
// lifetime of the application and mirrors every mutation to a local
// snapshot. The snapshot is a derived, best-effort copy, never a second
// source of truth.
type Store struct {
	kv     KV
	logger zerolog.Logger

	mu       sync.Mutex
	projects []models.Project
	loading  bool
}

func New(kv KV, logger zerolog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger.With().Str("component", "projectStore").Logger(),
	}
}

// Load adopts the persisted snapshot as the current state, or falls back to
// the built-in default dataset when the snapshot is absent or corrupt.
// Read and decode failures never propagate to the caller.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

// Refresh discards the in-memory state in favor of a reloaded snapshot.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

// load must be called with the mutex held. The loading flag is reset on
// every exit path.
func (s *Store) load() {
	s.loading = true
	defer func() { s.loading = false }()

	data, ok, err := s.kv.Get(snapshotKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read snapshot, seeding defaults")
		s.seedDefaults()
		return
	}
	if !ok {
		s.seedDefaults()
		return
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		s.logger.Error().Err(err).Msg("corrupt snapshot, seeding defaults")
		s.seedDefaults()
		return
	}
	s.projects = projects
}

func (s *Store) seedDefaults() {
	s.projects = DefaultProjects()
	_ = s.persist()
}

// Add generates a unique id for the given record and appends it to the end
// of the sequence (insertion order is display order). The returned error
// wraps errs.ErrStoreWrite when the snapshot write failed; the in-memory
// append is kept either way.
func (s *Store) Add(project models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project.ID = models.NewProjectID()
	s.projects = append(s.projects, project)
	if err := s.persist(); err != nil {
		return project, err
	}
	return project, nil
}

// Update replaces, in place, the record whose id matches project.ID,
// preserving its position. A missing id leaves the sequence unchanged.
func (s *Store) Update(project models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = project
			_ = s.persist()
			return
		}
	}
	s.logger.Debug().Str("projectID", project.ID).Msg("update of unknown project ignored")
}

// Delete removes the record with the matching id; absent ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			_ = s.persist()
			return
		}
	}
}

// Get returns the record with the given id, if present.
func (s *Store) Get(id string) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Projects returns a copy of the current sequence in insertion order.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Loading reports whether a load or refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// persist mirrors the current sequence to the snapshot. Must be called with
// the mutex held. An empty sequence is never written, so a delete-to-empty
// transition cannot overwrite a still-loading snapshot with an empty list.
// Write failures are logged and returned wrapped in errs.ErrStoreWrite; the
// in-memory state is never rolled back.
func (s *Store) persist() error {
	if len(s.projects) == 0 {
		s.logger.Debug().Msg("skipping snapshot write for empty sequence")
		return nil
	}

	data, err := json.Marshal(s.projects)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode snapshot")
		return fmt.Errorf("%w: %v", errs.ErrStoreWrite, err)
	}
	if err := s.kv.Set(snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to write snapshot")
		return fmt.Errorf("%w: %v", errs.ErrStoreWrite, err)
	}
	return nil
}
