package database

import (
	"database/sql"
	"fmt"

	"cetcounselor/models"
)

// ActivityRepository stores dashboard feed events.
type ActivityRepository struct {
	conn *sql.DB
}

// NewActivityRepository creates a repository bound to the given connection.
func NewActivityRepository(conn *sql.DB) *ActivityRepository {
	return &ActivityRepository{conn: conn}
}

// Insert stores one event.
func (r *ActivityRepository) Insert(ev models.ActivityEvent) error {
	_, err := r.conn.Exec(`
		INSERT INTO activity (id, action, college, created_at)
		VALUES (?, ?, ?, ?)`,
		ev.ID, ev.Action, ev.College, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (r *ActivityRepository) Recent(limit int) ([]models.ActivityEvent, error) {
	rows, err := r.conn.Query(`
		SELECT id, action, college, created_at
		FROM activity
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	events := []models.ActivityEvent{}
	for rows.Next() {
		var ev models.ActivityEvent
		if err := rows.Scan(&ev.ID, &ev.Action, &ev.College, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return events, nil
}
