package database

import (
	"database/sql"
	"fmt"

	"cetcounselor/models"
)

// CatalogRepository reads the seeded college directory.
type CatalogRepository struct {
	conn *sql.DB
}

// NewCatalogRepository creates a repository bound to the given connection.
func NewCatalogRepository(conn *sql.DB) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

// AllColleges returns every catalog entry in id order, branches in their
// seeded order.
func (r *CatalogRepository) AllColleges() ([]models.College, error) {
	rows, err := r.conn.Query(`
		SELECT id, name, location, type, rating, cutoff_range, fees, placements, avg_package
		FROM colleges
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query colleges: %w", err)
	}
	defer rows.Close()

	var colleges []models.College
	index := make(map[int]int)
	for rows.Next() {
		var c models.College
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Type, &c.Rating,
			&c.CutoffRange, &c.Fees, &c.Placements, &c.AvgPackage); err != nil {
			return nil, fmt.Errorf("scan college: %w", err)
		}
		c.Branches = []string{}
		index[c.ID] = len(colleges)
		colleges = append(colleges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate colleges: %w", err)
	}

	branchRows, err := r.conn.Query(`
		SELECT college_id, branch
		FROM college_branches
		ORDER BY college_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query branches: %w", err)
	}
	defer branchRows.Close()

	for branchRows.Next() {
		var collegeID int
		var branch string
		if err := branchRows.Scan(&collegeID, &branch); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		if i, ok := index[collegeID]; ok {
			colleges[i].Branches = append(colleges[i].Branches, branch)
		}
	}
	if err := branchRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate branches: %w", err)
	}

	return colleges, nil
}
