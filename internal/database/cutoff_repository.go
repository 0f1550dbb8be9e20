package database

import (
	"database/sql"
	"fmt"

	"cetcounselor/models"
)

// CutoffRepository reads the seeded historical cutoff dataset.
type CutoffRepository struct {
	conn *sql.DB
}

// NewCutoffRepository creates a repository bound to the given connection.
func NewCutoffRepository(conn *sql.DB) *CutoffRepository {
	return &CutoffRepository{conn: conn}
}

// Series returns the cutoff points for a college/branch/category combination,
// oldest year first. A combination with no data yields an empty slice.
func (r *CutoffRepository) Series(collegeKey, branchKey, categoryKey string) ([]models.CutoffPoint, error) {
	rows, err := r.conn.Query(`
		SELECT year, cutoff, seats
		FROM cutoffs
		WHERE college_key = ? AND branch_key = ? AND category_key = ?
		ORDER BY position`,
		collegeKey, branchKey, categoryKey)
	if err != nil {
		return nil, fmt.Errorf("query cutoff series: %w", err)
	}
	defer rows.Close()

	series := []models.CutoffPoint{}
	for rows.Next() {
		var p models.CutoffPoint
		if err := rows.Scan(&p.Year, &p.Cutoff, &p.Seats); err != nil {
			return nil, fmt.Errorf("scan cutoff point: %w", err)
		}
		series = append(series, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cutoff series: %w", err)
	}
	return series, nil
}

// Colleges returns the trends-view college selector list in seeded order.
// Entries may have no series data at all; the view shows them anyway.
func (r *CutoffRepository) Colleges() ([]models.CutoffOption, error) {
	rows, err := r.conn.Query(`SELECT key, name FROM cutoff_colleges ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query cutoff colleges: %w", err)
	}
	defer rows.Close()

	var options []models.CutoffOption
	for rows.Next() {
		var o models.CutoffOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scan cutoff college: %w", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cutoff colleges: %w", err)
	}
	return options, nil
}
