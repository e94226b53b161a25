package main

import (
	"database/sql"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Blog struct {
	db        *sql.DB
	templates map[string]*template.Template
}

func NewBlog(db *sql.DB) *Blog {
	return &Blog{
		db:        db,
		templates: loadTemplates(),
	}
}

func main() {
	godotenv.Load()

	initAuth()

	dbPath := os.Getenv("DATABASE")
	if dbPath == "" {
		dbPath = "flashlog.db"
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initDB(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	if err = seedSettings(db); err != nil {
		log.Fatalf("seeding settings: %v", err)
	}

	if os.Getenv("SEED_DEMO") == "true" {
		if err = seedDemoPosts(db, 5); err != nil {
			log.Fatalf("seeding demo posts: %v", err)
		}
	}

	if err = cleanupExpiredSessions(db); err != nil {
		log.Printf("cleaning up expired sessions: %v", err)
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			if err := cleanupExpiredSessions(db); err != nil {
				log.Printf("cleaning up expired sessions: %v", err)
			}
		}
	}()

	blog := NewBlog(db)

	fs := http.FileServer(http.Dir("static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	// Public routes
	http.HandleFunc("/", blog.Home)
	http.HandleFunc("/search/", blog.Search)
	http.HandleFunc("/login", blog.Login)
	http.HandleFunc("/logout", blog.Logout)
	http.HandleFunc("/delete/{id}", blog.Delete)

	// Protected routes
	http.HandleFunc("/add", blog.requireAuth(blog.Add))

	log.Println("Server starting on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
