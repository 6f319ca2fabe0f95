// Package redis implements a read-only audit source for deployments where
// the exporter publishes the audit document into Redis rather than a file.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/user/audit-scope/internal/domain"
)

const (
	// auditHashKey is the hash the exporter maintains: the full JSON
	// document under "payload", its publish timestamp under "updated_at".
	auditHashKey   = "audit:records"
	payloadField   = "payload"
	updatedAtField = "updated_at"
)

type envelope struct {
	Records []domain.RawRecord `json:"RECORDS"`
}

// Source reads the audit log from a Redis hash.
type Source struct {
	client *redis.Client
	logger *slog.Logger
}

// NewSource creates a new Redis-backed audit source.
func NewSource(client *redis.Client, logger *slog.Logger) *Source {
	return &Source{
		client: client,
		logger: logger.With("component", "redis_source"),
	}
}

// Version returns the exporter's publish timestamp for the document.
func (s *Source) Version(ctx context.Context) (string, error) {
	updatedAt, err := s.client.HGet(ctx, auditHashKey, updatedAtField).Result()
	if err != nil {
		return "", fmt.Errorf("read %s/%s: %w", auditHashKey, updatedAtField, err)
	}
	return updatedAt, nil
}

// Fetch reads and parses the published document.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	payload, err := s.client.HGet(ctx, auditHashKey, payloadField).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", auditHashKey, payloadField, err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil, fmt.Errorf("parse audit document: %w", err)
	}
	if env.Records == nil {
		return nil, fmt.Errorf("parse audit document: %w", domain.ErrMissingRecords)
	}

	s.logger.Debug("read audit document", "records", len(env.Records))
	return env.Records, nil
}
