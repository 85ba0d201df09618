package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/earthmove/internal/domain"
)

const dateLayout = "2006-01-02"

// lastInsertID returns the generated row ID of an insert.
func lastInsertID(res sql.Result, table string) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading %s id: %w", table, err)
	}
	return id, nil
}

// expectOneRow turns a zero-row update or delete into a not-found error.
func expectOneRow(res sql.Result, table string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows for %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports whether err is SQLite's UNIQUE constraint
// failure on the given table.column.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}
