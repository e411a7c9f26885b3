package seeder

import (
	"context"
	"fmt"
	"strings"

	"skill-exchange/internal/database"
)

// EnsureTableColumns fails with every missing column listed when table does not
// have the shape a seeder expects, e.g. when migrations have not been run.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("empty table or column list")
	}

	rows, err := db.Query(ctx,
		`SELECT want.col
		 FROM unnest($2::text[]) AS want(col)
		 WHERE NOT EXISTS (
		   SELECT 1 FROM information_schema.columns c
		   WHERE c.table_schema = current_schema() AND c.table_name = $1 AND c.column_name = want.col
		 )`,
		table, columns,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		missing = append(missing, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: %s is missing %s (run matchctl migrate)", table, strings.Join(missing, ", "))
	}
	return nil
}
