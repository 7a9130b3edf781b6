package mysql

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hcridlig/moovie-app-sub000/internal/datasources"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

// Embeddings are stored one table per media type, mirroring the separate
// embedding spaces: a row is (item id, little-endian float32 blob).
func embeddingTable(mediaType domain.MediaType) (table, idColumn string, err error) {
	switch mediaType {
	case domain.MediaTypeMovie:
		return "movie_embeddings", "movie_id", nil
	case domain.MediaTypeSeries:
		return "serie_embeddings", "serie_id", nil
	default:
		return "", "", fmt.Errorf("unknown media type [%s]", mediaType)
	}
}

func (r *Repository) FetchEmbedding(
	ctx context.Context, itemID int64, mediaType domain.MediaType,
) ([]float32, error) {
	table, idColumn, err := embeddingTable(mediaType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT embedding FROM %s WHERE %s = ?", table, idColumn)

	var blob []byte
	if err := r.db.QueryRowContext(ctx, query, itemID).Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching embedding for item %d: %w", itemID, err)
	}

	vector, err := bytesToFloat32Slice(blob)
	if err != nil {
		return nil, fmt.Errorf("decoding embedding for item %d: %w", itemID, err)
	}

	return vector, nil
}

func (r *Repository) ScanEmbeddings(
	ctx context.Context, mediaType domain.MediaType,
) ([]datasources.ItemEmbedding, error) {
	table, idColumn, err := embeddingTable(mediaType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s, embedding FROM %s", idColumn, table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scanning embeddings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []datasources.ItemEmbedding
	for rows.Next() {
		var itemID int64
		var blob []byte
		if err := rows.Scan(&itemID, &blob); err != nil {
			return nil, fmt.Errorf("scanning embedding row: %w", err)
		}

		vector, err := bytesToFloat32Slice(blob)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for item %d: %w", itemID, err)
		}

		result = append(result, datasources.ItemEmbedding{ItemID: itemID, Vector: vector})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating embedding rows: %w", err)
	}

	return result, nil
}

// UpsertEmbedding replaces an item's vector wholesale. Used by the offline
// ingestion job, never by the request path.
func (r *Repository) UpsertEmbedding(
	ctx context.Context, itemID int64, mediaType domain.MediaType, vector []float32,
) error {
	table, idColumn, err := embeddingTable(mediaType)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, embedding) VALUES (?, ?) ON DUPLICATE KEY UPDATE embedding = VALUES(embedding)",
		table, idColumn,
	)
	if _, err := r.db.ExecContext(ctx, query, itemID, float32SliceToBytes(vector)); err != nil {
		return fmt.Errorf("upserting embedding for item %d: %w", itemID, err)
	}
	return nil
}

// Helper functions for binary vector serialization

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}
