package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/Quartermaster/internal/filter"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS qm_presets (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			role_id TEXT NOT NULL DEFAULT '',
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS qm_rules (
			role_id TEXT PRIMARY KEY,
			weights JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`)
	return err
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreatePreset(ctx context.Context, p *FilterPreset) error {
	doc, err := json.Marshal(p.Document)
	if err != nil {
		return fmt.Errorf("marshal preset document: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO qm_presets (name, role_id, document)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		p.Name, strings.ToLower(p.RoleID), doc,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (s *PostgresStore) GetPreset(ctx context.Context, id uuid.UUID) (*FilterPreset, error) {
	p := &FilterPreset{}
	var doc []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, role_id, document, created_at, updated_at
		FROM qm_presets WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.RoleID, &doc, &p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Document = &filter.Filter{}
	if err := json.Unmarshal(doc, p.Document); err != nil {
		return nil, fmt.Errorf("unmarshal preset document: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListPresets(ctx context.Context, roleID string) ([]*FilterPreset, error) {
	query := `SELECT id, name, role_id, document, created_at, updated_at
		FROM qm_presets`
	args := []interface{}{}
	if roleID != "" {
		query += ` WHERE role_id = $1`
		args = append(args, strings.ToLower(roleID))
	}
	query += ` ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*FilterPreset
	for rows.Next() {
		p := &FilterPreset{}
		var doc []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.RoleID, &doc, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Document = &filter.Filter{}
		if err := json.Unmarshal(doc, p.Document); err != nil {
			return nil, fmt.Errorf("unmarshal preset document: %w", err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (s *PostgresStore) UpdatePreset(ctx context.Context, p *FilterPreset) error {
	doc, err := json.Marshal(p.Document)
	if err != nil {
		return fmt.Errorf("marshal preset document: %w", err)
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE qm_presets
		SET name = $2, role_id = $3, document = $4, updated_at = now()
		WHERE id = $1`,
		p.ID, p.Name, strings.ToLower(p.RoleID), doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("preset %s not found", p.ID)
	}
	return nil
}

func (s *PostgresStore) DeletePreset(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM qm_presets WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) SaveRule(ctx context.Context, rec *RuleRecord) error {
	weights, err := json.Marshal(rec.Weights)
	if err != nil {
		return fmt.Errorf("marshal rule weights: %w", err)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO qm_rules (role_id, weights)
		VALUES ($1, $2)
		ON CONFLICT (role_id) DO UPDATE SET weights = $2, updated_at = now()
		RETURNING updated_at`,
		strings.ToLower(rec.RoleID), weights,
	).Scan(&rec.UpdatedAt)
}

func (s *PostgresStore) GetRule(ctx context.Context, roleID string) (*RuleRecord, error) {
	rec := &RuleRecord{}
	var weights []byte
	err := s.pool.QueryRow(ctx, `
		SELECT role_id, weights, updated_at FROM qm_rules WHERE role_id = $1`,
		strings.ToLower(roleID),
	).Scan(&rec.RoleID, &weights, &rec.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(weights, &rec.Weights); err != nil {
		return nil, fmt.Errorf("unmarshal rule weights: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListRules(ctx context.Context) ([]*RuleRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT role_id, weights, updated_at FROM qm_rules ORDER BY role_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*RuleRecord
	for rows.Next() {
		rec := &RuleRecord{}
		var weights []byte
		if err := rows.Scan(&rec.RoleID, &weights, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(weights, &rec.Weights); err != nil {
			return nil, fmt.Errorf("unmarshal rule weights: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *PostgresStore) DeleteRule(ctx context.Context, roleID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM qm_rules WHERE role_id = $1`, strings.ToLower(roleID))
	return err
}
