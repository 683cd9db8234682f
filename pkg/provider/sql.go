package provider

import (
	"database/sql"
)

func buildCreateResponsesTable() string {
	return `CREATE TABLE IF NOT EXISTS provider_responses (
		url TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at INTEGER NOT NULL);`
}

func buildSelectResponseCommand() (string, func(*sql.Rows) ([]byte, bool, error)) {
	return `SELECT body FROM provider_responses WHERE url = ?`, processSelectResponseRows
}

func processSelectResponseRows(rows *sql.Rows) ([]byte, bool, error) {
	defer rows.Close()

	// only can be one row
	if rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, false, err
		}
		return body, true, nil
	}
	return nil, false, rows.Err()
}

func buildUpsertResponseCommand() string {
	return `INSERT OR REPLACE INTO provider_responses (url, body, fetched_at) VALUES (?, ?, ?)`
}

func buildCountResponsesCommand() string {
	return `SELECT COUNT(*) FROM provider_responses`
}
