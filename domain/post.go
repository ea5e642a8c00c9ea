package domain

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PublicPost struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    *PublicAccount `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
}

type PostRepo interface {
	Create(authorID int64, title, content string) (*Post, error)
	Get(postID int64) (*Post, error)
	Delete(postID int64) (rowsAffected int64, err error)
	ListAll(pagination Pagination) ([]*PublicPost, error)
}

type PostUseCase interface {
	Create(authorID int64, title, content string) (*PublicPost, error)
	GetAll(pagination Pagination) ([]*PublicPost, error)
	Delete(postID, userID int64) error
}
