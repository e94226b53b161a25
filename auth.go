package main

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookieName = "session"
	sessionDuration   = 24 * time.Hour
)

var (
	configUsername string
	configPassword string
	secureCookies  bool
)

func initAuth() {
	configUsername = os.Getenv("USERNAME")
	if configUsername == "" {
		configUsername = "admin"
	}

	pass := os.Getenv("PASSWORD")
	if pass == "" {
		log.Println("WARNING: PASSWORD not set, using default password")
		pass = "password"
	}
	configPassword = mustHashPassword(pass)

	secureCookies = os.Getenv("SECURE_COOKIES") == "true"
}

func mustHashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func checkPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// checkCredentials distinguishes the two failure cases so each can flash
// its own message.
func checkCredentials(username, password string) (ok bool, failure string) {
	if username != configUsername {
		return false, "Invalid username"
	}
	if !checkPassword(configPassword, password) {
		return false, "Invalid password"
	}
	return true, ""
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func createSession(db *sql.DB) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	expiresAt := time.Now().Add(sessionDuration)
	_, err = db.Exec(`
		INSERT INTO sessions (token, expires_at)
		VALUES (?, ?)`, token, expiresAt)
	if err != nil {
		return "", fmt.Errorf("inserting session: %w", err)
	}

	return token, nil
}

func getSession(db *sql.DB, token string) (*Session, error) {
	row := db.QueryRow(`
		SELECT token, expires_at
		FROM sessions
		WHERE token = ? AND expires_at > ?`, token, time.Now())

	var session Session
	err := row.Scan(&session.Token, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	return &session, nil
}

func deleteSession(db *sql.DB, token string) error {
	_, err := db.Exec("DELETE FROM sessions WHERE token = ?", token)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func cleanupExpiredSessions(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return fmt.Errorf("cleaning up expired sessions: %w", err)
	}
	return nil
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionDuration.Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// requireAuth is middleware that protects routes requiring authentication
func (b *Blog) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !b.isAuthenticated(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// isAuthenticated checks if the current request has a valid session
func (b *Blog) isAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}

	session, err := getSession(b.db, cookie.Value)
	return err == nil && session != nil
}
