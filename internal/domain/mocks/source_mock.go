package mocks

import (
	"context"
	"sync"

	"github.com/user/audit-scope/internal/domain"
)

// MockAuditSource is a mock implementation of domain.AuditSource for testing.
type MockAuditSource struct {
	mu            sync.Mutex
	VersionResult string
	VersionErr    error
	Records       []domain.RawRecord
	FetchErr      error
	VersionCalls  int
	FetchCalls    int
}

func (m *MockAuditSource) Version(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VersionCalls++
	if m.VersionErr != nil {
		return "", m.VersionErr
	}
	return m.VersionResult, nil
}

func (m *MockAuditSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.Records, nil
}

// SetRecords swaps the backing records and bumps the version, simulating a
// source change between calls.
func (m *MockAuditSource) SetRecords(version string, records []domain.RawRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VersionResult = version
	m.Records = records
}
