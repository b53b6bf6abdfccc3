package jsonl

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

// Store appends one JSON document per audit report to a file.
type Store struct {
	path string
	mu   sync.Mutex
	f    *os.File
}

var _ ports.AuditStore = (*Store)(nil)

// Open creates or opens path for appending; missing directories are created.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, os.ErrInvalid
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, f: f}, nil
}

func (s *Store) SaveAuditReport(ctx context.Context, report domain.AuditReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return os.ErrClosed
	}
	_, err = s.f.Write(data)
	return err
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
