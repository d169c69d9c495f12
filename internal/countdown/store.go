package countdown

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Countdown is one persisted countdown record. Fields are immutable after
// creation; a record is only ever removed, never updated in place.
type Countdown struct {
	Name       string `json:"name"`
	TargetDate int64  `json:"targetDate"` // epoch ms
	ChannelID  string `json:"channelId"`
	MessageID  string `json:"messageId"`
	CreatedBy  string `json:"createdBy"`
	CreatedAt  int64  `json:"createdAt"` // epoch ms
}

// Store holds the ordered countdown list and its file-backed persistence.
// It is not safe for concurrent use: all access happens on the single
// event worker. Mutations do not persist automatically — callers invoke
// Save after mutating so the persistence boundary stays explicit.
type Store struct {
	path  string
	items []Countdown
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted records into memory. A missing file yields an
// empty list; unreadable or malformed data is logged and discarded rather
// than failing startup.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.items = nil
		return
	}
	if err != nil {
		slog.Error("countdown store unreadable, starting empty", "path", s.path, "error", err)
		s.items = nil
		return
	}
	var items []Countdown
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Error("countdown store malformed, starting empty", "path", s.path, "error", err)
		s.items = nil
		return
	}
	s.items = items
}

// Save rewrites the store file with the full current list, pretty-printed
// for hand inspection, via a temp file renamed into place. Failure is
// logged, not returned: memory stays authoritative and the next mutation
// will try again.
func (s *Store) Save() {
	items := s.items
	if items == nil {
		items = []Countdown{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		slog.Error("failed to marshal countdown store", "error", err)
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("failed to create store directory", "path", dir, "error", err)
			return
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		slog.Error("failed to write countdown store", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		slog.Error("failed to replace countdown store", "path", s.path, "error", err)
	}
}

// Append adds a record at the end of the list.
func (s *Store) Append(c Countdown) {
	s.items = append(s.items, c)
}

// RemoveAt removes and returns the record at the 0-based index i.
// The caller is responsible for range checking.
func (s *Store) RemoveAt(i int) Countdown {
	c := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return c
}

// List returns a copy of the current records in insertion order.
func (s *Store) List() []Countdown {
	out := make([]Countdown, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int { return len(s.items) }

// Replace swaps in a new full contents, used by the refresh pass after
// pruning expired or unreachable countdowns.
func (s *Store) Replace(items []Countdown) {
	s.items = items
}
