package db

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"
)

const DefaultTable = "results"

var ErrInvalidTableName = errors.New("invalid table name")

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTable reports whether table can be used as a results table name.
func ValidateTable(table string) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return nil
}

// FraudTable names the table that maps documents to their fraud words.
func FraudTable(table string) string {
	return table + "__fraud_matching"
}

func schemaSQL(table string) string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]q (
    document_name TEXT PRIMARY KEY,
    rate REAL NOT NULL,
    words INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS %[2]q (
    document_name TEXT NOT NULL,
    fraud_word TEXT NOT NULL,
    UNIQUE(document_name, fraud_word)
);
`, table, FraudTable(table))
}

func Open(path, table string) (*Repository, error) {
	if table == "" {
		table = DefaultTable
	}
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := conn.Exec(schemaSQL(table)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Repository{conn: conn, results: table, fraud: FraudTable(table)}, nil
}
