package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/TitaniumBrain/shell-todo/internal/datadir"
)

// Store maps the on-disk task file to an in-memory List.
type Store struct {
	path   string
	atomic bool
	logger *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithAtomicSave controls whether Save writes a sibling temp file and
// renames it over the task file (the default) or overwrites in place.
func WithAtomicSave(enabled bool) StoreOption {
	return func(s *Store) {
		s.atomic = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a store for the task file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		atomic: true,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenDefault returns a store for <user-data-dir>/shell_todo/tasks.json.
func OpenDefault(resolver datadir.Resolver, opts ...StoreOption) (*Store, error) {
	path, err := resolver.TasksPath()
	if err != nil {
		return nil, &Error{Kind: KindConfig, Err: err}
	}
	return NewStore(path, opts...), nil
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task file. A missing file is created, along with its
// parent directories, and yields an empty list.
func (s *Store) Load() (List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.create()
		}
		return nil, &Error{Kind: KindRead, Path: s.path, Err: err}
	}

	tasks, err := Parse(data)
	if err != nil {
		return nil, &Error{Kind: KindRead, Path: s.path, Err: err}
	}
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

func (s *Store) create() (List, error) {
	s.logger.Debug("creating task file", "path", s.path)
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, &Error{Kind: KindCreate, Path: s.path, Err: err}
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, &Error{Kind: KindCreate, Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &Error{Kind: KindCreate, Path: s.path, Err: err}
	}
	return List{}, nil
}

// Save replaces the task file contents with tasks.
func (s *Store) Save(tasks List) error {
	data, err := Marshal(tasks)
	if err != nil {
		return &Error{Kind: KindSerialize, Path: s.path, Err: err}
	}

	if s.atomic {
		err = writeFileAtomic(s.path, data, 0644)
	} else {
		err = os.WriteFile(s.path, data, 0644)
	}
	if err != nil {
		return &Error{Kind: KindSerialize, Path: s.path, Err: err}
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks), "atomic", s.atomic)
	return nil
}

// Parse decodes and validates a task file document. Empty or
// whitespace-only input is an empty list. Input must be valid UTF-8.
func Parse(data []byte) (List, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("parse task file: invalid UTF-8")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return List{}, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("validate task file: %w", err)
	}

	var tasks List
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode task file: %w", err)
	}
	if tasks == nil {
		tasks = List{}
	}
	return tasks, nil
}

// Marshal encodes tasks as a 2-space indented JSON array without a
// trailing newline. A nil list encodes as [].
func Marshal(tasks List) ([]byte, error) {
	if tasks == nil {
		tasks = List{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place so readers never observe a torn file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
