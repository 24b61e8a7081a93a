package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied in order on startup. Every statement must stay
// idempotent. Ids are plain strings: lookups with a malformed id must find
// nothing rather than fail.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id VARCHAR(36) PRIMARY KEY,
		text TEXT NOT NULL,
		"order" INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		id VARCHAR(36) PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		question_text TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_candidate_id ON answers (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id)`,
	`CREATE TABLE IF NOT EXISTS videos (
		id VARCHAR(36) PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		url TEXT NOT NULL,
		title VARCHAR(255) NOT NULL DEFAULT '',
		duration VARCHAR(50) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_videos_candidate_id ON videos (candidate_id)`,
	`CREATE TABLE IF NOT EXISTS cvs (
		id VARCHAR(36) PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		filename TEXT NOT NULL,
		url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_cvs_candidate_id ON cvs (candidate_id)`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
