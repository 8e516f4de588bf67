package settings

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Persister is the host's opaque key-value persistence.
// Load returns nil data and a nil error when nothing was ever saved.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Store holds the current Settings for one session and writes them back
// through a Persister. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	persister Persister
	current   Settings
	extra     map[string]any
}

// NewStore creates a Store holding Defaults until Load is called.
func NewStore(persister Persister) *Store {
	return &Store{persister: persister, current: Defaults()}
}

// Load reads the persisted data and merges it over Defaults.
// Missing data is not an error. Persistence and decoding errors propagate.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	data, err := s.persister.Load(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	raw, err := decode(data)
	if err != nil {
		return Settings{}, err
	}

	extra := make(map[string]any)
	for key, value := range raw {
		if !isKnownKey(key) {
			extra[key] = value
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Merge(raw)
	s.extra = extra
	return s.current, nil
}

// Settings returns the current snapshot.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces one field and returns the updated record.
// The caller is responsible for calling Save afterwards.
func (s *Store) Set(field Field, value string) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.With(field, value)
	return s.current
}

// Save hands the full current record, plus any unknown keys seen at load
// time, to the persister. Errors propagate to the caller.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	data, err := encode(s.current, s.extra)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if err := s.persister.Save(ctx, data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Update sets one field and saves, the way a settings form persists every edit.
func (s *Store) Update(ctx context.Context, field Field, value string) (Settings, error) {
	updated := s.Set(field, value)
	if err := s.Save(ctx); err != nil {
		return Settings{}, err
	}
	return updated, nil
}

// Reset restores Defaults and saves. Unknown keys are kept.
func (s *Store) Reset(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	s.current = Defaults()
	s.mu.Unlock()
	if err := s.Save(ctx); err != nil {
		return Settings{}, err
	}
	return Defaults(), nil
}

// decode parses persisted bytes. YAML is a superset of JSON, so a plugin
// data.json file decodes the same way as settings.yaml.
func decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return raw, nil
}

func encode(current Settings, extra map[string]any) ([]byte, error) {
	doc := make(map[string]any, len(extra)+len(Fields()))
	for key, value := range extra {
		doc[key] = value
	}
	for _, field := range Fields() {
		doc[string(field)] = current.Get(field)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return data, nil
}
