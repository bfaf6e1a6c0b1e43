package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			screen TEXT NOT NULL DEFAULT 'queue',
			selector TEXT NOT NULL DEFAULT 'artists',
			artist TEXT,
			queue_key TEXT
		);

		CREATE TABLE IF NOT EXISTS expanded_albums (
			artist TEXT NOT NULL,
			album TEXT NOT NULL,
			PRIMARY KEY (artist, album)
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
