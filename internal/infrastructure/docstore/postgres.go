package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// Store is a schemaless document store on PostgreSQL. Every partition is a
// named collection inside a single JSONB table, so readers never depend on
// a per-retailer schema.
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL, waits for the server to accept connections,
// and ensures the documents table exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("docstore: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("docstore: ping failed after retries: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("docstore: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection  TEXT        NOT NULL,
			doc_id      TEXT        NOT NULL,
			data        JSONB       NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, doc_id)
		);

		CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
	`)
	return err
}

// FetchCollection loads every document in one partition and decodes the
// valid ones into normalized products tagged with origin. No pagination:
// the whole collection is pulled per call.
func (s *Store) FetchCollection(ctx context.Context, collection, origin string) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc_id, data FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return nil, fmt.Errorf("docstore: query %s: %w", collection, err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("docstore: scan %s: %w", collection, err)
		}
		if p, ok := DecodeProduct(id, raw, origin); ok {
			products = append(products, p)
		}
	}
	return products, rows.Err()
}

// Upsert batch-writes documents into a partition, replacing the payload of
// any existing id.
func (s *Store) Upsert(ctx context.Context, collection string, docs []domain.Document) error {
	const batchSize = 100
	for i := 0; i < len(docs); i += batchSize {
		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := s.upsertBatch(ctx, collection, docs[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) upsertBatch(ctx context.Context, collection string, batch []domain.Document) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*3)

	for idx, doc := range batch {
		data, err := json.Marshal(doc.Data)
		if err != nil {
			return fmt.Errorf("docstore: encode %s/%s: %w", collection, doc.ID, err)
		}
		base := idx * 3
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d)", base+1, base+2, base+3))
		valueArgs = append(valueArgs, collection, doc.ID, data)
	}

	query := fmt.Sprintf(`
		INSERT INTO documents (collection, doc_id, data)
		VALUES %s
		ON CONFLICT (collection, doc_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, strings.Join(valueStrings, ","))

	if _, err := s.db.ExecContext(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("docstore: upsert into %s: %w", collection, err)
	}
	return nil
}

// Count returns how many documents a partition holds.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = $1`, collection).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("docstore: count %s: %w", collection, err)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
