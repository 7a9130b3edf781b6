package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

func (r *Repository) ListLikedItemIDs(
	ctx context.Context, userID int64, mediaType domain.MediaType,
) ([]int64, error) {
	sb := sqlbuilder.Select("item_id")
	sb.From("preferences")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("media_type", string(mediaType)),
		sb.Equal("liked", true),
	)
	sb.OrderBy("preference_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying liked items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	itemIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning liked item: %w", err)
		}
		itemIDs = append(itemIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating liked items: %w", err)
	}

	return itemIDs, nil
}

func (r *Repository) ListPreferences(
	ctx context.Context, userID int64, mediaType domain.MediaType,
) ([]domain.Preference, error) {
	sb := sqlbuilder.Select("item_id", "media_type", "liked")
	sb.From("preferences")

	conds := []string{sb.Equal("user_id", userID)}
	if mediaType != "" {
		conds = append(conds, sb.Equal("media_type", string(mediaType)))
	}
	sb.Where(conds...)
	sb.OrderBy("preference_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	prefs := []domain.Preference{}
	for rows.Next() {
		p := domain.Preference{UserID: userID}
		var mt string
		if err := rows.Scan(&p.ItemID, &mt, &p.Liked); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		p.MediaType = domain.MediaType(mt)
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating preferences: %w", err)
	}

	return prefs, nil
}

// SetPreference upserts a preference and, when vector is non-nil, keeps the
// user's aggregate embedding in sync within the same transaction: a new
// like adds the item vector, a like flipped to dislike subtracts it.
func (r *Repository) SetPreference(
	ctx context.Context, pref domain.Preference, vector []float32,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wasLiked, existed, err := currentLikedState(ctx, tx, pref.UserID, pref.ItemID, pref.MediaType)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO preferences (user_id, item_id, media_type, liked)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE liked = VALUES(liked)`,
		pref.UserID, pref.ItemID, string(pref.MediaType), pref.Liked,
	); err != nil {
		return fmt.Errorf("upserting preference: %w", err)
	}

	if vector != nil {
		switch {
		case pref.Liked && !(existed && wasLiked):
			err = applyUserVectorDelta(ctx, tx, pref.UserID, vector, 1)
		case !pref.Liked && existed && wasLiked:
			err = applyUserVectorDelta(ctx, tx, pref.UserID, vector, -1)
		}
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// RemovePreference deletes a preference. Removing a like subtracts the item
// vector from the user's aggregate embedding when vector is non-nil.
// Removing a preference that does not exist is a no-op.
func (r *Repository) RemovePreference(
	ctx context.Context, userID, itemID int64, mediaType domain.MediaType, vector []float32,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wasLiked, existed, err := currentLikedState(ctx, tx, userID, itemID, mediaType)
	if err != nil {
		return err
	}
	if !existed {
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM preferences WHERE user_id = ? AND item_id = ? AND media_type = ?",
		userID, itemID, string(mediaType),
	); err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}

	if wasLiked && vector != nil {
		if err := applyUserVectorDelta(ctx, tx, userID, vector, -1); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func currentLikedState(
	ctx context.Context, tx *sql.Tx, userID, itemID int64, mediaType domain.MediaType,
) (liked, existed bool, err error) {
	err = tx.QueryRowContext(ctx,
		"SELECT liked FROM preferences WHERE user_id = ? AND item_id = ? AND media_type = ? FOR UPDATE",
		userID, itemID, string(mediaType),
	).Scan(&liked)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("getting current preference: %w", err)
	}
	return liked, true, nil
}

// applyUserVectorDelta adds (sign=1) or subtracts (sign=-1) an item vector
// from the user's aggregate embedding sum and count. The aggregate is reset
// to NULL when the count drops to zero.
func applyUserVectorDelta(
	ctx context.Context, tx *sql.Tx, userID int64, vector []float32, sign int,
) error {
	var blob []byte
	var count int
	err := tx.QueryRowContext(ctx,
		"SELECT user_embedding, user_vector_count FROM users WHERE user_id = ? FOR UPDATE",
		userID,
	).Scan(&blob, &count)
	if err != nil {
		return fmt.Errorf("getting user vector: %w", err)
	}

	sum := make([]float32, len(vector))
	if blob != nil {
		current, err := bytesToFloat32Slice(blob)
		if err != nil {
			return fmt.Errorf("decoding user vector: %w", err)
		}
		if len(current) == len(vector) {
			sum = current
		}
	}

	for i, v := range vector {
		sum[i] += float32(sign) * v
	}
	count += sign

	if count <= 0 {
		_, err = tx.ExecContext(ctx,
			"UPDATE users SET user_embedding = NULL, user_vector_count = 0 WHERE user_id = ?",
			userID,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE users SET user_embedding = ?, user_vector_count = ? WHERE user_id = ?",
			float32SliceToBytes(sum), count, userID,
		)
	}
	if err != nil {
		return fmt.Errorf("updating user vector: %w", err)
	}
	return nil
}
