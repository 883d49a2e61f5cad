// Package fs implements core.Store on the local filesystem.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/todo/pkg/core"
	"github.com/aretw0/todo/pkg/git"
)

// DefaultName is the note used when no name is given.
const DefaultName = "default"

// Store implements core.Store with one plain text file per note.
type Store struct {
	Dir        string
	git        *git.Client
	serializer Serializer
	config     Config

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Dir         string // directory holding named notes
	File        string // fixed file used for the default note; Dir/DefaultName when empty
	DefaultName string // name of the default note inside Dir
	Versioning  bool   // keep Dir as a git repository and commit every change
	Logger      *slog.Logger
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.DefaultName == "" {
		config.DefaultName = DefaultName
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Dir:        config.Dir,
		git:        git.NewClient(config.Dir, git.DefaultLockName, config.Logger),
		serializer: NewLineSerializer(),
		config:     config,
	}
}

// ValidateName rejects names that could escape the notes directory or be
// mistaken for a file extension.
func ValidateName(name string) error {
	if strings.ContainsAny(name, "./\\") || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("%w: %q", core.ErrInvalidName, name)
	}
	return nil
}

// Initialize creates the notes directory and, with versioning, the git repository.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ValidateName(s.config.DefaultName); err != nil {
		return err
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create notes directory: %w", core.ErrIO, err)
	}

	if !s.config.Versioning {
		return nil
	}
	if !git.IsInstalled() {
		return fmt.Errorf("versioning requires git, which is not installed")
	}
	if !s.git.IsRepo() {
		if err := s.git.Init(); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
		if err := s.ensureIgnore(); err != nil {
			return fmt.Errorf("failed to ensure .gitignore: %w", err)
		}
		s.config.Logger.Info("initialized note history", "dir", s.Dir)
	}
	return nil
}

func (s *Store) ensureIgnore() error {
	ignorePath := filepath.Join(s.Dir, ".gitignore")
	entries := []string{git.DefaultLockName, TempFilePrefix + "*"}

	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var missing []string
	for _, entry := range entries {
		if !bytes.Contains(content, []byte(entry+"\n")) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}
	_, err = f.WriteString(strings.Join(missing, "\n") + "\n")
	return err
}

// Path resolves the file holding the named note. The empty name resolves to
// the configured fixed file, or Dir/DefaultName.
func (s *Store) Path(name string) (string, error) {
	if name == "" {
		if s.config.File != "" {
			return s.config.File, nil
		}
		name = s.config.DefaultName
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, name), nil
}

// Load reads the note list. A missing file is an empty list.
func (s *Store) Load(ctx context.Context, name string) (core.NoteList, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.NoteList{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", core.ErrIO, path, err)
	}
	defer f.Close()

	notes, err := s.serializer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", core.ErrIO, path, err)
	}
	return notes, nil
}

// Save overwrites the note file with notes and, with versioning, commits it.
func (s *Store) Save(ctx context.Context, name string, notes core.NoteList) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create directories: %w", core.ErrIO, err)
	}

	if err := writeFileAtomic(path, s.serializer.Serialize(notes), 0644); err != nil {
		return fmt.Errorf("%w: failed to write file: %w", core.ErrIO, err)
	}
	s.recordWrite()
	s.config.Logger.Debug("note written", "path", path, "lines", len(notes))

	return s.commit(ctx, path, false)
}

// Remove deletes the note file.
func (s *Store) Remove(ctx context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrNotFound, path)
		}
		return fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", core.ErrNotFound, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: failed to remove file: %w", core.ErrIO, err)
	}
	s.recordWrite()

	return s.commit(ctx, path, true)
}

// List returns the names of the note files in Dir, in directory order
// (lexical today, but callers must not rely on it). A non-empty pattern
// filters names with doublestar glob syntax.
func (s *Store) List(ctx context.Context, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to list %s: %w", core.ErrIO, s.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, TempFilePrefix) || ValidateName(name) != nil {
			continue
		}
		if pattern != "" {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}
	return names, nil
}

// commit records the change in git when versioning is enabled and the file
// lives inside Dir.
func (s *Store) commit(ctx context.Context, path string, removed bool) error {
	if !s.config.Versioning {
		return nil
	}

	rel, err := filepath.Rel(s.Dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		s.config.Logger.Debug("note outside history dir, not committing", "path", path)
		return nil
	}

	unlock, err := s.git.Lock(5 * time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if removed {
		if !s.git.IsTracked(rel) {
			return nil
		}
		if err := s.git.Rm(rel); err != nil {
			return fmt.Errorf("failed to git rm: %w", err)
		}
	} else {
		status, err := s.git.Status(rel)
		if err != nil {
			return fmt.Errorf("failed to git status: %w", err)
		}
		if status == "" {
			return nil
		}
		if err := s.git.Add(rel); err != nil {
			return fmt.Errorf("failed to git add: %w", err)
		}
	}

	subject := "update " + rel
	if removed {
		subject = "remove " + rel
	} else if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		subject = val
	}

	if err := s.git.Commit(git.FormatCommitMessage(git.CommitTypeDocs, rel, subject, "")); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}
