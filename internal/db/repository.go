package db

import (
	"database/sql"
	"fmt"

	"academic_nausea/internal/nausea"
)

// Repository stores analysis results in a results table keyed by document
// name and a companion table of fraud words.
type Repository struct {
	conn    *sql.DB
	results string
	fraud   string
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

// Tables returns the names of the results and fraud word tables.
func (r *Repository) Tables() (results, fraud string) {
	return r.results, r.fraud
}

// withTx commits when fn succeeds and rolls back otherwise.
func (r *Repository) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Store saves results in one transaction. A document analysed before is
// replaced together with its fraud words. Any failure discards the whole
// batch.
func (r *Repository) Store(results []nausea.Result) error {
	if len(results) == 0 {
		return nil
	}
	return r.withTx(func(tx *sql.Tx) error {
		upsert, err := tx.Prepare(fmt.Sprintf(
			`INSERT INTO %q(document_name, rate, words) VALUES(?,?,?)
			 ON CONFLICT(document_name) DO UPDATE SET rate = excluded.rate, words = excluded.words`,
			r.results))
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer upsert.Close()

		purge, err := tx.Prepare(fmt.Sprintf(`DELETE FROM %q WHERE document_name = ?`, r.fraud))
		if err != nil {
			return fmt.Errorf("prepare clear fraud words: %w", err)
		}
		defer purge.Close()

		insert, err := tx.Prepare(fmt.Sprintf(
			`INSERT OR IGNORE INTO %q(document_name, fraud_word) VALUES(?,?)`, r.fraud))
		if err != nil {
			return fmt.Errorf("prepare insert fraud word: %w", err)
		}
		defer insert.Close()

		for _, res := range results {
			if res.DocumentName == "" {
				return fmt.Errorf("store result: empty document name")
			}
			if _, err := upsert.Exec(res.DocumentName, res.Rate, res.Words); err != nil {
				return fmt.Errorf("upsert %s: %w", res.DocumentName, err)
			}
			if _, err := purge.Exec(res.DocumentName); err != nil {
				return fmt.Errorf("clear fraud words of %s: %w", res.DocumentName, err)
			}
			for _, w := range res.FraudWords {
				if _, err := insert.Exec(res.DocumentName, w); err != nil {
					return fmt.Errorf("insert fraud word of %s: %w", res.DocumentName, err)
				}
			}
		}
		return nil
	})
}

// Fetch returns the stored result of the named document, or of every
// document ordered by name when name is empty. Fraud words are sorted.
func (r *Repository) Fetch(name string) ([]nausea.Result, error) {
	query := fmt.Sprintf(`
SELECT a.document_name, a.rate, a.words, b.fraud_word
FROM %q AS a
LEFT JOIN %q AS b ON a.document_name = b.document_name`, r.results, r.fraud)
	var args []any
	if name != "" {
		query += ` WHERE a.document_name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY a.document_name, b.fraud_word`

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := []nausea.Result{}
	for rows.Next() {
		var (
			res  nausea.Result
			word sql.NullString
		)
		if err := rows.Scan(&res.DocumentName, &res.Rate, &res.Words, &word); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if n := len(out); n == 0 || out[n-1].DocumentName != res.DocumentName {
			res.FraudWords = []string{}
			out = append(out, res)
		}
		if word.Valid {
			last := &out[len(out)-1]
			last.FraudWords = append(last.FraudWords, word.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

func (r *Repository) Count(table string) (int, error) {
	if err := ValidateTable(table); err != nil {
		return 0, err
	}
	row := r.conn.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table))
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
