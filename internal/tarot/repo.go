package tarot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) AppendTurn(ctx context.Context, user string, role Role, content string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO turns (user_id, role, content)
		VALUES ($1, $2, $3)
	`, user, string(role), content)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// RecentTurns returns at most limit most recent turns, oldest first.
func (r *repo) RecentTurns(ctx context.Context, user string, limit int) ([]Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, role, content, created_at
		FROM turns
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, user, limit)
	if err != nil {
		return nil, fmt.Errorf("recent turns: %w", err)
	}
	defer rows.Close()

	var out []Turn
	for rows.Next() {
		var t Turn
		var role string
		if err := rows.Scan(&t.ID, &t.User, &role, &t.Content, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Role = Role(role)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query is newest-first for the LIMIT; callers want oldest-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *repo) AppendReading(ctx context.Context, user, question string, cardNames []string, answer string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO readings (user_id, question, card_names, answer)
		VALUES ($1, $2, $3, $4)
	`, user, question, pq.Array(cardNames), answer)
	if err != nil {
		return fmt.Errorf("append reading: %w", err)
	}
	return nil
}

// RecentReadings returns at most limit readings, newest first.
func (r *repo) RecentReadings(ctx context.Context, user string, limit int) ([]Reading, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, question, card_names, answer, created_at
		FROM readings
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, user, limit)
	if err != nil {
		return nil, fmt.Errorf("recent readings: %w", err)
	}
	defer rows.Close()

	var out []Reading
	for rows.Next() {
		var rd Reading
		if err := rows.Scan(&rd.ID, &rd.User, &rd.Question, pq.Array(&rd.CardNames), &rd.Answer, &rd.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}
