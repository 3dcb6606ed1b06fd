package mocks

import (
	"context"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/stretchr/testify/mock"
)

// KVStore is a mock for repository.KVStore.
type KVStore struct {
	mock.Mock
}

func (m *KVStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *KVStore) Put(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KVStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *KVStore) Keys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if keys, ok := args.Get(0).([]string); ok {
		return keys, args.Error(1)
	}
	return nil, args.Error(1)
}

// AuditLog is a mock for the audit recorder used by domain services.
type AuditLog struct {
	mock.Mock
}

func (m *AuditLog) Record(ctx context.Context, event audit.Event) (audit.Entry, error) {
	args := m.Called(ctx, event)
	if entry, ok := args.Get(0).(audit.Entry); ok {
		return entry, args.Error(1)
	}
	return audit.Entry{}, args.Error(1)
}
