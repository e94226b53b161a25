package main

import "time"

type Post struct {
	ID        int
	Title     string
	Text      string
	CreatedAt time.Time
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}
