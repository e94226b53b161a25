package main

import "database/sql"

func getPosts(db *sql.DB) ([]Post, error) {
	query := "SELECT id, title, text, created_at FROM posts ORDER BY created_at DESC, id DESC"
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Text, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// searchPosts matches the query as a case-insensitive substring of the
// title or text. An empty query matches every post.
func searchPosts(db *sql.DB, q string) ([]Post, error) {
	query := `
		SELECT id, title, text, created_at
		FROM posts
		WHERE title LIKE '%' || ? || '%' OR text LIKE '%' || ? || '%'
		ORDER BY created_at DESC, id DESC`
	rows, err := db.Query(query, q, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Text, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func createPost(db *sql.DB, title, text string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO posts (title, text)
		VALUES (?, ?)`, title, text)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// deletePost is a no-op for ids that match no row.
func deletePost(db *sql.DB, id int) error {
	_, err := db.Exec("DELETE FROM posts WHERE id = ?", id)
	return err
}
