package jobs

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

const (
	statusFile = "job.yaml"
	lockFile   = "job.lock"
	logFile    = "job.log"
)

// CorruptRecordError reports a status record that exists on disk but
// cannot be parsed. Callers treat the job as having no history rather
// than surfacing the error to the user.
type CorruptRecordError struct {
	Path string
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt job status record %s: %v", e.Path, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// Store reads and writes job status records under a single root
// directory, one subdirectory per job name. Records for distinct job
// names are fully independent.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

// Dir returns the directory holding all of a job's artifacts: status
// record, lock file, and output log.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, jobID(name))
}

func (s *Store) StatusPath(name string) string {
	return filepath.Join(s.Dir(name), statusFile)
}

func (s *Store) LockPath(name string) string {
	return filepath.Join(s.Dir(name), lockFile)
}

func (s *Store) LogPath(name string) string {
	return filepath.Join(s.Dir(name), logFile)
}

// Load reads the status record for a job. A missing record returns
// (nil, nil): the job has no history. An unparseable record returns a
// *CorruptRecordError.
func (s *Store) Load(name string) (*Status, error) {
	path := s.StatusPath(name)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read job status: %w", err)
	}

	var st Status
	if err := yaml.Unmarshal(b, &st); err != nil {
		return nil, &CorruptRecordError{Path: path, Err: err}
	}
	return &st, nil
}

// Save writes the status record atomically: the document is written to a
// temporary file in the job directory and renamed over the old record,
// so a concurrent Load from a sibling invocation always observes either
// the old or the new record in full.
func (s *Store) Save(name string, st *Status) error {
	dir := s.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create job directory: %w", err)
	}

	b, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode job status: %w", err)
	}

	tmp, err := os.CreateTemp(dir, statusFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp status file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp status file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp status file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.StatusPath(name)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename status file into place: %w", err)
	}
	return nil
}

// jobID maps a caller-chosen job name onto a filesystem-safe directory
// name. A readable sanitized prefix keeps the cache browsable; the
// digest suffix guarantees two distinct names never share a directory
// even when sanitization collides.
func jobID(name string) string {
	sum := blake3.Sum256([]byte(name))
	digest := hex.EncodeToString(sum[:4])

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	prefix := b.String()
	if len(prefix) > 40 {
		prefix = prefix[:40]
	}
	if prefix == "" {
		return digest
	}
	return prefix + "-" + digest
}
