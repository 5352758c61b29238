// Package archive persists paint canvases: the always-current
// "latest" slot and the append-only archive of past drawings.
//
// Every write is atomic (temp file in the same directory, then rename)
// so a crash or power loss mid-write leaves either the old file or the
// new one, never a truncated image. There is exactly one writer per
// data root, so no locking beyond the rename is needed.
package archive

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LatestName is the filename of the latest-slot image inside the store
// directory.
const LatestName = "latest.png"

// timestampLayout names archive files so lexical order is time order.
const timestampLayout = "2006-01-02_150405"

// Record is one immutable archived canvas.
type Record struct {
	// Path is the absolute or store-relative location of the PNG file.
	Path string
	// Name is the file name, e.g. "2026-08-26_153000_1.png".
	Name string
}

// Store manages latest.png and the archive records under one directory.
type Store struct {
	dir      string
	now      func() time.Time
	readOnly bool
}

// Option configures a Store during Open.
type Option func(*Store)

// WithClock overrides the time source used for archive names.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// ReadOnly opens the store for browsing only: no startup rollover, and
// writes are refused. Used by parent-facing tools (export) that must
// not disturb a possibly-running session.
func ReadOnly() Option {
	return func(s *Store) {
		s.readOnly = true
	}
}

// Open prepares a store rooted at dir, creating the directory if
// needed. A latest.png left behind by a prior session is rolled over
// into the archive before the new session's autosaves can overwrite
// it, so autosave-only sessions are never silently lost.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.readOnly {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("archive: open store dir: %w", err)
		}
		return s, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: create store dir: %w", err)
	}
	if err := s.rolloverLatest(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// LatestPath returns the path of the latest-slot file.
func (s *Store) LatestPath() string {
	return filepath.Join(s.dir, LatestName)
}

// ErrReadOnly is returned by writes on a store opened with ReadOnly.
var ErrReadOnly = errors.New("archive: store is read-only")

// WriteLatest atomically replaces the latest slot with img.
func (s *Store) WriteLatest(img image.Image) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if err := s.writeAtomic(s.LatestPath(), img); err != nil {
		return err
	}
	logger().Debug("autosaved latest slot", "path", s.LatestPath())
	return nil
}

// Archive writes img as a new immutable record named by the current
// timestamp and returns its path. When two archive events land in the
// same second, a numeric suffix starting at 1 disambiguates.
func (s *Store) Archive(img image.Image) (string, error) {
	if s.readOnly {
		return "", ErrReadOnly
	}
	path := s.nextArchivePath()
	if err := s.writeAtomic(path, img); err != nil {
		return "", err
	}
	logger().Debug("archived canvas", "path", path)
	return path, nil
}

// rolloverLatest moves an existing latest.png into the archive. The
// move is a rename, so the prior session's image is preserved without
// re-encoding.
func (s *Store) rolloverLatest() error {
	latest := s.LatestPath()
	if _, err := os.Stat(latest); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("archive: stat latest slot: %w", err)
	}
	path := s.nextArchivePath()
	if err := os.Rename(latest, path); err != nil {
		return fmt.Errorf("archive: roll over latest slot: %w", err)
	}
	logger().Debug("rolled over prior session", "path", path)
	return nil
}

// nextArchivePath picks the first unused timestamp-based name.
func (s *Store) nextArchivePath() string {
	base := s.now().Format(timestampLayout)
	path := filepath.Join(s.dir, base+".png")
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s_%d.png", base, n))
	}
}

// writeAtomic encodes img as PNG to a temporary file in the target's
// directory and renames it into place. The temp file is removed on any
// failure so retries never trip over leftovers.
func (s *Store) writeAtomic(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("archive: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("archive: encode %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("archive: flush %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("archive: replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// List returns the archive records newest-first. The latest slot and
// non-PNG files are excluded. Archive names sort lexically by time, so
// newest-first is a reverse name sort.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("archive: list records: %w", err)
	}
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == LatestName || !strings.HasSuffix(name, ".png") {
			continue
		}
		records = append(records, Record{
			Path: filepath.Join(s.dir, name),
			Name: name,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name > records[j].Name
	})
	return records, nil
}

// Load decodes the PNG image at path. Used for recall selections and
// thumbnails; a malformed file is the caller's cue to skip the record.
func (s *Store) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: open record: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("archive: decode record %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// LoadLatest decodes the latest slot, or returns false when no latest
// slot exists yet.
func (s *Store) LoadLatest() (image.Image, bool, error) {
	img, err := s.Load(s.LatestPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return img, true, nil
}
