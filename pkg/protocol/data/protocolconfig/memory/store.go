package memory

import (
	"context"
	"sync"
	"time"

	"github.com/feevault/feevault-server/pkg/protocol/data/protocolconfig"
)

type store struct {
	mu     sync.Mutex
	record *protocolconfig.Record
}

// New returns a new in memory protocolconfig.Store
func New() protocolconfig.Store {
	return &store{}
}

// Put implements protocolconfig.Store.Put
func (s *store) Put(_ context.Context, record *protocolconfig.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record != nil {
		return protocolconfig.ErrAlreadyExists
	}

	cloned := record.Clone()
	cloned.Id = 1
	cloned.CreatedAt = time.Now()
	s.record = &cloned

	cloned.CopyTo(record)

	return nil
}

// Get implements protocolconfig.Store.Get
func (s *store) Get(_ context.Context) (*protocolconfig.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return nil, protocolconfig.ErrNotFound
	}

	cloned := s.record.Clone()
	return &cloned, nil
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = nil
}
