// Package snapshot stores the derived country table (calling codes, masks,
// names) on disk in msgpack form.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"

	"telinput/internal/phone"
)

// Current schema version - increment when Snapshot format changes
const schemaVersion uint16 = 1

// FileName is the snapshot file name inside the cache directory.
const FileName = "countries.mp"

// ErrSchema reports a snapshot written by an incompatible version.
var ErrSchema = errors.New("snapshot schema mismatch")

// Snapshot is the serialized country table.
type Snapshot struct {
	// Schema version for safe invalidation when format changes
	Schema   uint16
	Language string
	Entries  []Entry
}

// Entry describes one country.
type Entry struct {
	Country     string
	CallingCode uint16
	Mask        string // empty when no example number exists
	Name        string
}

// Build collects the table of every supported country, names in tag.
func Build(in *phone.Interpreter, tag language.Tag) (*Snapshot, error) {
	countries := in.Registry().Countries()
	snap := &Snapshot{
		Schema:   schemaVersion,
		Language: tag.String(),
		Entries:  make([]Entry, 0, len(countries)),
	}
	for _, c := range countries {
		code, _ := in.CallingCodeOf(c)
		n, err := strconv.Atoi(string(code))
		if err != nil {
			return nil, fmt.Errorf("%s: calling code %q: %w", c, code, err)
		}
		num, err := safecast.Conv[uint16](n)
		if err != nil {
			return nil, fmt.Errorf("%s: calling code overflow: %w", c, err)
		}
		mask, _ := in.MaskFor(c)
		name, _ := phone.CountryName(c, tag)
		snap.Entries = append(snap.Entries, Entry{
			Country:     string(c),
			CallingCode: num,
			Mask:        string(mask),
			Name:        name,
		})
	}
	return snap, nil
}

// Lookup returns the entry of country.
func (s *Snapshot) Lookup(country phone.CountryCode) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Country == string(country) {
			return e, true
		}
	}
	return Entry{}, false
}

// DefaultPath returns the snapshot location under the user cache
// directory ($XDG_CACHE_HOME or ~/.cache).
func DefaultPath(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app, FileName), nil
}

// Write serializes s to path, replacing any previous file atomically.
func Write(path string, s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("nil snapshot")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // already renamed on success

	if err := msgpack.NewEncoder(f).Encode(s); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, path)
}

// Read loads a snapshot. A missing file is reported as os.ErrNotExist.
func Read(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var s Snapshot
	if err := msgpack.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if s.Schema != schemaVersion {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", path, ErrSchema, s.Schema, schemaVersion)
	}
	return &s, nil
}
