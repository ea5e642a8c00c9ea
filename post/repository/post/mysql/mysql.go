package mysql

import (
	"time"

	"github.com/pkg/errors"
	"github.com/yhlin/social-network/domain"
	ormKit "github.com/yhlin/social-network/kit/orm"
	utilKit "github.com/yhlin/social-network/kit/util"
)

type postEntity struct {
	domain.Post
}

func (postEntity) TableName() string {
	return "post"
}

type postRepo struct {
	db *ormKit.DB
}

func CreatePostRepo(db *ormKit.DB) domain.PostRepo {
	return &postRepo{
		db: db,
	}
}

func (p *postRepo) Create(authorID int64, title, content string) (*domain.Post, error) {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return nil, errors.Wrap(err, "generate unique id failed")
	}

	post := postEntity{
		Post: domain.Post{
			ID:        uniqueIDGenerate.Generate().GetInt64(),
			Title:     title,
			Content:   content,
			AuthorID:  authorID,
			CreatedAt: time.Now(),
		},
	}

	if err := p.db.Create(&post).Error; err != nil {
		return nil, errors.Wrap(err, "create post failed")
	}

	return &post.Post, nil
}

func (p *postRepo) Get(postID int64) (*domain.Post, error) {
	var post postEntity
	if err := p.db.First(&post, postID); err != nil {
		return nil, errors.Wrap(err, "get post failed")
	}
	return &post.Post, nil
}

// Delete reports matched rows so a concurrent delete of the same post leaves
// the loser with zero rows instead of a spurious success.
func (p *postRepo) Delete(postID int64) (int64, error) {
	result := p.db.Where("id = ?", postID).Delete(&postEntity{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete post failed")
	}
	return result.RowsAffected, nil
}

type postRow struct {
	ID              int64
	Title           string
	Content         string
	CreatedAt       time.Time
	AuthorID        int64
	AuthorEmail     string
	AuthorFirstname string
	AuthorLastname  string
}

func (p *postRepo) ListAll(pagination domain.Pagination) ([]*domain.PublicPost, error) {
	var rows []postRow
	tx := p.db.Table("post").
		Select("post.id, post.title, post.content, post.created_at, account.id AS author_id, account.email AS author_email, account.firstname AS author_firstname, account.lastname AS author_lastname").
		Joins("JOIN account ON account.id = post.author_id").
		Order("post.created_at DESC")
	if pagination.Limit > 0 {
		tx = tx.Limit(pagination.Limit)
	}
	if pagination.Offset > 0 {
		tx = tx.Offset(pagination.Offset)
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list posts failed")
	}

	posts := make([]*domain.PublicPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, &domain.PublicPost{
			ID:      row.ID,
			Title:   row.Title,
			Content: row.Content,
			Author: &domain.PublicAccount{
				ID:        row.AuthorID,
				Email:     row.AuthorEmail,
				Firstname: row.AuthorFirstname,
				Lastname:  row.AuthorLastname,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return posts, nil
}
