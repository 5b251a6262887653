package store

const (
	createDocumentsTable = `
		CREATE TABLE IF NOT EXISTS documents (
			local_id   TEXT PRIMARY KEY,
			remote_id  TEXT NOT NULL DEFAULT '',
			name       TEXT NOT NULL,
			url        TEXT NOT NULL DEFAULT '',
			mode       TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);`

	saveSingleDocument = `
		INSERT INTO documents (
			local_id,
			remote_id,
			name,
			url,
			mode,
			status,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	getAllDocuments = `
		SELECT
			local_id,
			remote_id,
			name,
			url,
			mode,
			status,
			created_at
		FROM documents
		ORDER BY created_at;`
)
