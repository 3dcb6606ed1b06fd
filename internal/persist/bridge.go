// Package persist mirrors in-memory collections into durable key/value
// storage as JSON wrapped in a {version, data} envelope.
//
// Reads and writes never fail past this package: a missing key, an
// unreadable value, or a payload that fails its shape checks all load as
// "no persisted state", and write failures are logged and dropped.
package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gloovup/portal/internal/repository"
)

// SchemaVersion is written into every envelope saved by this build.
const SchemaVersion = 1

// KeyPrefix starts every key this package owns.
const KeyPrefix = "gloov_"

// Fixed storage keys, one per persisted collection.
const (
	KeyClients       = "gloov_clients"
	KeyProjects      = "gloov_projects"
	KeyTickets       = "gloov_tickets"
	KeyUsers         = "gloov_users"
	KeyLeaveRequests = "gloov_leave_requests"
	KeyAuditLog      = "gloov_audit_log"
	KeyReminders     = "gloov_domain_reminders"
	KeyNotifications = "gloov_notification_prefs"
)

var (
	// ErrUnsupportedVersion is reported when a stored envelope was written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	// ErrEmptyPayload is reported when an envelope carries no data.
	ErrEmptyPayload = errors.New("empty payload")
)

// Envelope is the stored shape of every persisted value.
type Envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Bridge reads and writes JSON envelopes through a KVStore.
type Bridge struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewBridge creates a new Bridge.
func NewBridge(kv repository.KVStore, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{kv: kv, logger: logger}
}

// Load reads key and decodes its payload into T. The second result is false
// when the key is absent, the value cannot be decoded, or any check rejects
// the decoded value; callers then fall back to their fixtures.
func Load[T any](ctx context.Context, b *Bridge, key string, checks ...func(T) error) (T, bool) {
	var zero T

	raw, err := b.kv.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		b.logger.Debug("no persisted state", "key", key)
		return zero, false
	}
	if err != nil {
		b.logger.Warn("failed to read persisted state", "key", key, "error", err)
		return zero, false
	}

	data, version, err := unwrap([]byte(raw))
	if err != nil {
		b.logger.Warn("discarding persisted state", "key", key, "error", err)
		return zero, false
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		b.logger.Warn("discarding unparsable persisted state", "key", key, "version", version, "error", err)
		return zero, false
	}

	for _, check := range checks {
		if err := check(out); err != nil {
			b.logger.Warn("discarding persisted state with invalid shape", "key", key, "version", version, "error", err)
			return zero, false
		}
	}

	if version < SchemaVersion {
		b.logger.Info("upgraded legacy persisted state", "key", key, "from", version, "to", SchemaVersion)
	}
	return out, true
}

// Save writes v under key. Failures are logged and leave the previously
// stored value untouched.
func (b *Bridge) Save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		b.logger.Error("failed to encode state", "key", key, "error", err)
		return
	}
	payload, err := json.Marshal(Envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		b.logger.Error("failed to encode envelope", "key", key, "error", err)
		return
	}
	if err := b.kv.Put(ctx, key, string(payload)); err != nil {
		b.logger.Error("failed to persist state", "key", key, "error", err)
		return
	}
	b.logger.Debug("persisted state", "key", key, "bytes", len(payload))
}

// Clear deletes every portal key so the next start loads fixtures. Keys
// outside KeyPrefix are left alone. It returns the number of keys removed.
func (b *Bridge) Clear(ctx context.Context) (int, error) {
	keys, err := b.kv.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	removed := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		if err := b.kv.Delete(ctx, key); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return removed, fmt.Errorf("delete %q: %w", key, err)
		}
		removed++
	}
	b.logger.Info("cleared persisted state", "keys", removed)
	return removed, nil
}

// unwrap extracts the payload from an envelope. Values written before
// envelopes existed are bare JSON and are reported as version 0.
func unwrap(raw []byte) (json.RawMessage, int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, 0, ErrEmptyPayload
	}
	if trimmed[0] != '{' {
		return trimmed, 0, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, 0, fmt.Errorf("decode envelope: %w", err)
	}
	rawVersion, hasVersion := fields["version"]
	data, hasData := fields["data"]
	if !hasVersion || !hasData {
		return trimmed, 0, nil
	}

	var version int
	if err := json.Unmarshal(rawVersion, &version); err != nil {
		return nil, 0, fmt.Errorf("decode envelope version: %w", err)
	}
	if version > SchemaVersion {
		return nil, version, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, version, ErrEmptyPayload
	}
	return data, version, nil
}
