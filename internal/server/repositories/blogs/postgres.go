package blogs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// PostgresRepository implements blog storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one post. Nil optional fields are stored as NULL.
func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	query := `
		INSERT INTO blogs (id, title, description, blog_image, author_name, publish_date, total_likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		blog.ID, blog.Title, blog.Description, blog.BlogImage, blog.AuthorName,
		blog.PublishDate, blog.TotalLikes, blog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return blog, nil
}

// List returns every stored post in storage order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Blog, error) {
	query := `SELECT id, title, description, blog_image, author_name, publish_date, total_likes, created_at FROM blogs`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Blog, 0)
	for rows.Next() {
		var (
			item        models.Blog
			blogImage   sql.NullString
			publishDate sql.NullString
			totalLikes  sql.NullFloat64
		)
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &blogImage, &item.AuthorName,
			&publishDate, &totalLikes, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if blogImage.Valid {
			item.BlogImage = &blogImage.String
		}
		if publishDate.Valid {
			item.PublishDate = &publishDate.String
		}
		if totalLikes.Valid {
			item.TotalLikes = &totalLikes.Float64
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
