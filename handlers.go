package main

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type statusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeStatus(w http.ResponseWriter, resp statusResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// renderPosts draws the index page for both the full listing and search
// results.
func (b *Blog) renderPosts(w http.ResponseWriter, r *http.Request, posts []Post, query string) {
	siteHeading, err := heading(b.db)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":           siteHeading,
		"Heading":         siteHeading,
		"Posts":           posts,
		"Query":           query,
		"Flash":           popFlash(w, r),
		"IsAuthenticated": b.isAuthenticated(r),
	}

	err = b.templates["index.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Blog) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	posts, err := getPosts(b.db)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	b.renderPosts(w, r, posts, "")
}

func (b *Blog) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	posts, err := searchPosts(b.db, query)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	b.renderPosts(w, r, posts, query)
}

func (b *Blog) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		siteHeading, err := heading(b.db)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		data := map[string]any{
			"Title":           "Login",
			"Heading":         siteHeading,
			"Flash":           popFlash(w, r),
			"IsAuthenticated": b.isAuthenticated(r),
		}
		err = b.templates["login.html"].ExecuteTemplate(w, "base", data)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		ok, failure := checkCredentials(username, password)
		if !ok {
			setFlash(w, failure)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		token, err := createSession(b.db)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, token)
		setFlash(w, "You were logged in")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func (b *Blog) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := deleteSession(b.db, cookie.Value); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	clearSessionCookie(w)
	setFlash(w, "You were logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (b *Blog) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	text := r.FormValue("text")

	if _, err := createPost(b.db, title, text); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "New entry was successfully posted")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete answers a soft JSON status instead of HTTP errors, including for
// unauthenticated callers.
func (b *Blog) Delete(w http.ResponseWriter, r *http.Request) {
	if !b.isAuthenticated(r) {
		writeStatus(w, statusResponse{Status: 0, Message: "Please log in."})
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeStatus(w, statusResponse{Status: 0, Message: "Invalid post id"})
		return
	}

	if err := deletePost(b.db, id); err != nil {
		writeStatus(w, statusResponse{Status: 0, Message: err.Error()})
		return
	}

	writeStatus(w, statusResponse{Status: 1, Message: "Post Deleted"})
}
