package store

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/io"
	"github.com/matzehuels/holefit/pkg/observability"
)

// ErrNotFound is returned when a stored solution does not exist.
var ErrNotFound = stderrors.New("solution not found")

const ext = ".json"

// Entry describes one stored solution.
type Entry struct {
	Problem string
	Name    string
	Size    int64
	ModTime time.Time
}

// FileStore keeps named solutions as JSON files, one directory per problem:
//
//	<baseDir>/<problem>/<name>.json
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based solution store.
// If baseDir is empty, defaults to ~/.config/holefit/solutions/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "holefit", "solutions")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create solution dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the base directory for solution files.
func (s *FileStore) Path() string {
	return s.baseDir
}

// SolutionPath returns the file a solution is stored in.
func (s *FileStore) SolutionPath(problem, name string) string {
	return filepath.Join(s.baseDir, problem, name+ext)
}

// Save stores sol under problem/name, replacing any previous solution of the
// same name. An empty name gets a generated one. It returns the name used.
func (s *FileStore) Save(ctx context.Context, problem, name string, sol figure.Solution) (string, error) {
	if name == "" {
		name = uuid.NewString()[:8]
	}
	if err := validate(problem, name); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := io.WriteSolution(sol, &buf); err != nil {
		return "", fmt.Errorf("marshal solution: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Join(s.baseDir, problem), 0700); err != nil {
		return "", fmt.Errorf("create problem dir: %w", err)
	}
	if err := os.WriteFile(s.SolutionPath(problem, name), buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("write solution file: %w", err)
	}
	observability.Store().OnSave(ctx, problem, name, buf.Len())
	return name, nil
}

// Load returns the solution stored under problem/name.
func (s *FileStore) Load(ctx context.Context, problem, name string) (*figure.Solution, error) {
	if err := validate(problem, name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sol, err := io.ImportSolution(s.SolutionPath(problem, name))
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		err = notFound(problem, name)
	}
	observability.Store().OnLoad(ctx, problem, name, err)
	if err != nil {
		return nil, err
	}
	return sol, nil
}

// Delete removes the solution stored under problem/name.
func (s *FileStore) Delete(ctx context.Context, problem, name string) error {
	if err := validate(problem, name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.SolutionPath(problem, name)); err != nil {
		if os.IsNotExist(err) {
			return notFound(problem, name)
		}
		return fmt.Errorf("remove solution file: %w", err)
	}
	observability.Store().OnDelete(ctx, problem, name)
	return nil
}

// List returns the solutions stored for problem, newest first. An unknown
// problem has no solutions.
func (s *FileStore) List(ctx context.Context, problem string) ([]Entry, error) {
	if err := errors.ValidateName(problem); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.baseDir, problem))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read problem dir: %w", err)
	}

	var out []Entry
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Problem: problem,
			Name:    strings.TrimSuffix(entry.Name(), ext),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// Problems returns the problems that have at least one stored solution.
func (s *FileStore) Problems(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read solution dir: %w", err)
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			out = append(out, entry.Name())
		}
	}
	return out, nil
}

func validate(problem, name string) error {
	if err := errors.ValidateName(problem); err != nil {
		return err
	}
	return errors.ValidateName(name)
}

func notFound(problem, name string) error {
	return errors.Wrap(errors.ErrCodeSolutionNotFound, ErrNotFound, "no solution %q for problem %s", name, problem)
}
