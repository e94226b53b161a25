package main

import (
	"database/sql"
	"fmt"
)

const defaultHeading = "Flashlog"

func getSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

func setSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

func seedSettings(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = 'heading'").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "heading", defaultHeading)
	return err
}

// heading returns the configured site heading, falling back to the
// default when the settings row is missing.
func heading(db *sql.DB) (string, error) {
	value, err := getSetting(db, "heading")
	if err != nil {
		return "", err
	}
	if value == "" {
		return defaultHeading, nil
	}
	return value, nil
}
