// Package journal persists an undo record for the most recent apply: the
// pre-image of every changed file plus a hash of what was written, so undo
// can refuse to clobber files modified since.
package journal

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

const journalFile = "journal.msgpack"

// ErrNoJournal is returned when there is nothing recorded to restore.
var ErrNoJournal = errors.New("no recorded apply to undo")

// Entry records the pre-image of one file changed by an apply.
type Entry struct {
	Path     string
	Original []byte
	// Written is the sha256 of the content the apply wrote; restore
	// validates the file still matches before overwriting it.
	Written [32]byte
}

// Payload is the serialised journal.
type Payload struct {
	Schema  uint16
	Action  string
	Applied time.Time
	Entries []Entry
}

// Journal reads and writes the undo record under one directory.
type Journal struct {
	dir string
}

// New creates a Journal rooted at dir.
func New(dir string) *Journal {
	return &Journal{dir: dir}
}

// NewEntry captures the pre-image and the written content's hash.
func NewEntry(path string, original, written []byte) Entry {
	return Entry{
		Path:     path,
		Original: append([]byte(nil), original...),
		Written:  sha256.Sum256(written),
	}
}

// Record replaces the journal with the given apply record.
func (j *Journal) Record(action string, entries []Entry) error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	payload := Payload{
		Schema:  schemaVersion,
		Action:  action,
		Applied: time.Now().UTC(),
		Entries: entries,
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}
	if err := os.WriteFile(j.path(), data, 0o600); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}

// Load reads the journal and validates its schema.
func (j *Journal) Load() (*Payload, error) {
	data, err := os.ReadFile(j.path())
	if os.IsNotExist(err) {
		return nil, ErrNoJournal
	}
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	var payload Payload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("journal: decode: %w", err)
	}
	if payload.Schema != schemaVersion {
		return nil, fmt.Errorf("journal: unsupported schema %d", payload.Schema)
	}
	return &payload, nil
}

// Restore writes the pre-images back and removes the journal. Every file
// must still hash to what the apply wrote; otherwise nothing is touched.
func (j *Journal) Restore() ([]string, error) {
	payload, err := j.Load()
	if err != nil {
		return nil, err
	}

	for _, entry := range payload.Entries {
		current, err := os.ReadFile(entry.Path)
		if err != nil {
			return nil, fmt.Errorf("journal: %w", err)
		}
		if sha256.Sum256(current) != entry.Written {
			return nil, fmt.Errorf("journal: %s changed since the last apply", entry.Path)
		}
	}

	restored := make([]string, 0, len(payload.Entries))
	for _, entry := range payload.Entries {
		mode := os.FileMode(0o644)
		if info, err := os.Stat(entry.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(entry.Path, entry.Original, mode); err != nil {
			return restored, fmt.Errorf("journal: restore %s: %w", entry.Path, err)
		}
		restored = append(restored, entry.Path)
	}

	if err := os.Remove(j.path()); err != nil && !os.IsNotExist(err) {
		return restored, fmt.Errorf("journal: %w", err)
	}
	return restored, nil
}

func (j *Journal) path() string {
	return filepath.Join(j.dir, journalFile)
}
