package main

import (
	"database/sql"
	"fmt"

	"github.com/brianvoe/gofakeit"
	_ "modernc.org/sqlite"
)

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func initDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		expires_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := db.Exec(schema)
	return err
}

// seedDemoPosts fills an empty posts table with generated entries.
// Only called when SEED_DEMO=true; a fresh production database stays
// empty so the index shows its empty-state message.
func seedDemoPosts(db *sql.DB, count int) error {
	var existing int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	stmt := "INSERT INTO posts (title, text) VALUES (?, ?)"
	for i := 0; i < count; i++ {
		title := gofakeit.Sentence(4)
		text := gofakeit.Paragraph(1, 3, 12, " ")
		if _, err := db.Exec(stmt, title, text); err != nil {
			return fmt.Errorf("seeding demo post: %w", err)
		}
	}

	fmt.Println("successfully seeded demo posts")
	return nil
}
