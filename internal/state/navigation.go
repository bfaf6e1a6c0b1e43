package state

import (
	"context"
	"database/sql"
	"errors"

	dbutil "github.com/MoreDelay/inori/internal/db"
)

// AlbumRef names one album of one artist.
type AlbumRef struct {
	Artist string
	Album  string
}

type NavigationState struct {
	Screen   string // "queue" or "library"
	Selector string // "artists" or "tracks"
	Artist   string // artist under the artist cursor
	QueueKey string // queue entry under the queue cursor
	Expanded []AlbumRef
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT screen, selector, artist, queue_key
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var artist, queueKey sql.NullString

	err := row.Scan(&state.Screen, &state.Selector, &artist, &queueKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.Artist = dbutil.NullStringValue(artist)
	state.QueueKey = dbutil.NullStringValue(queueKey)

	rows, err := db.Query(`SELECT artist, album FROM expanded_albums ORDER BY artist, album`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ref AlbumRef
		if err := rows.Scan(&ref.Artist, &ref.Album); err != nil {
			return nil, err
		}
		state.Expanded = append(state.Expanded, ref)
	}
	return &state, rows.Err()
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	return dbutil.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO navigation_state (id, screen, selector, artist, queue_key)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				screen = excluded.screen,
				selector = excluded.selector,
				artist = excluded.artist,
				queue_key = excluded.queue_key
		`, state.Screen, state.Selector, dbutil.NullString(state.Artist), dbutil.NullString(state.QueueKey))
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM expanded_albums`); err != nil {
			return err
		}
		for _, ref := range state.Expanded {
			if _, err := tx.Exec(`
				INSERT OR IGNORE INTO expanded_albums (artist, album) VALUES (?, ?)
			`, ref.Artist, ref.Album); err != nil {
				return err
			}
		}
		return nil
	})
}
