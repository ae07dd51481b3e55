// Package save persists game states as named JSON files and manages
// the rotating autosave slots. The engine never touches this package;
// the shell drives it.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Zobiii/WurstelbudenSimulator/internal/game"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

const autosavePrefix = "autosave_day_"

var autosavePattern = regexp.MustCompile(`^autosave_day_(\d+)$`)

// Store is a save-file repository rooted at one directory.
type Store struct {
	mu   sync.Mutex
	dir  string
	keep int // autosave slots that survive rotation
}

// NewStore creates the saves directory if needed. keep is the number
// of recent autosaves retained by rotation; values below 1 fall back
// to 1.
func NewStore(dir string, keep int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if keep < 1 {
		keep = 1
	}
	return &Store{dir: dir, keep: keep}, nil
}

// Save writes the state under the given name, overwriting any
// previous save of that name.
func (s *Store) Save(st *model.GameState, name string) error {
	name = sanitize(name)
	if name == "" {
		return fmt.Errorf("save name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(st, name)
}

// Load reads a named save and validates its integrity; a state that
// fails validation is rejected as corrupt.
func (s *Store) Load(name string) (*model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(sanitize(name)))
	if err != nil {
		return nil, err
	}

	var st model.GameState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("decode save %q: %w", name, err)
	}
	if err := game.Validate(&st); err != nil {
		return nil, fmt.Errorf("save %q is corrupt: %w", name, err)
	}
	return &st, nil
}

// List returns all save names, sorted.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a named save. Returns false when it did not exist.
func (s *Store) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(sanitize(name)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AutoSave writes the state into the day-numbered autosave slot and
// rotates older slots away, keeping only the most recent ones.
// Returns the slot name written.
func (s *Store) AutoSave(st *model.GameState) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := autosavePrefix + strconv.Itoa(st.Day)
	if err := s.writeLocked(st, name); err != nil {
		return "", err
	}
	if err := s.rotateLocked(); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) writeLocked(st *model.GameState, name string) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), b, 0o644)
}

func (s *Store) rotateLocked() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	days := make([]int, 0, len(entries))
	for _, e := range entries {
		m := autosavePattern.FindStringSubmatch(strings.TrimSuffix(e.Name(), ".json"))
		if m == nil || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		days = append(days, day)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	for _, day := range days[min(s.keep, len(days)):] {
		if err := os.Remove(s.path(autosavePrefix + strconv.Itoa(day))); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// sanitize strips path separators and other characters that would
// escape the saves directory.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", ":", "_", "\x00", "_")
	return replacer.Replace(name)
}
