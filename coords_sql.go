package lvt

import (
	"context"
	"database/sql"
	"fmt"
)

const coordinatesQuery = `SELECT label, latitude, longitude FROM property_coordinates`

// LoadCoordinates reads known property coordinates from the
// property_coordinates table. The caller registers the driver, e.g. by
// importing github.com/lib/pq.
func LoadCoordinates(ctx context.Context, db *sql.DB) (LookupSource, error) {
	rows, err := db.QueryContext(ctx, coordinatesQuery)
	if err != nil {
		return nil, fmt.Errorf("query coordinates: %w", err)
	}
	defer rows.Close()

	src := make(LookupSource)
	for rows.Next() {
		var label string
		var c Coordinate
		if err := rows.Scan(&label, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("scan coordinates: %w", err)
		}
		src[label] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read coordinates: %w", err)
	}
	return src, nil
}
