package blogs

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertBlogQuery = `(?s)^INSERT\s+INTO\s+blogs\s*\(id,\s*title,\s*description,\s*blog_image,\s*author_name,\s*publish_date,\s*total_likes,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7,\s*\$8\)\s*$`
	selectBlogQuery = `(?s)^SELECT\s+id,\s*title,\s*description,\s*blog_image,\s*author_name,\s*publish_date,\s*total_likes,\s*created_at\s+FROM\s+blogs\s*$`
)

var blogColumns = []string{"id", "title", "description", "blog_image", "author_name", "publish_date", "total_likes", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	img := "https://img.example/cover.png"
	b := &models.Blog{ID: "b-1", Title: "T", Description: "D", BlogImage: &img, AuthorName: "A", CreatedAt: created}

	mock.ExpectExec(insertBlogQuery).
		WithArgs("b-1", "T", "D", &img, "A", (*string)(nil), (*float64)(nil), created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertBlogQuery).WillReturnError(errors.New("insert failed"))

	_, err := repo.Create(context.Background(), &models.Blog{ID: "b-1"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*insert failed`), err.Error())
}

func TestList_MapsNullableColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	rows := sqlmock.NewRows(blogColumns).
		AddRow("b-1", "First", "one", "https://img/1.png", "Ann", "2024-05-06", 3.5, created).
		AddRow("b-2", "Second", "two", nil, "Bob", nil, nil, created)
	mock.ExpectQuery(selectBlogQuery).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "b-1", got[0].ID)
	require.NotNil(t, got[0].BlogImage)
	assert.Equal(t, "https://img/1.png", *got[0].BlogImage)
	require.NotNil(t, got[0].PublishDate)
	assert.Equal(t, "2024-05-06", *got[0].PublishDate)
	require.NotNil(t, got[0].TotalLikes)
	assert.Equal(t, 3.5, *got[0].TotalLikes)

	assert.Equal(t, "b-2", got[1].ID)
	assert.Nil(t, got[1].BlogImage)
	assert.Nil(t, got[1].PublishDate)
	assert.Nil(t, got[1].TotalLikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNonNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectBlogQuery).WillReturnRows(sqlmock.NewRows(blogColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectBlogQuery).WillReturnError(errors.New("select failed"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: select failed")
}

func TestList_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows(blogColumns).
		AddRow("b-1", "T", "D", nil, "A", nil, nil, created).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery(selectBlogQuery).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row broke")
}
