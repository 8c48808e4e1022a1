package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("create", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO images (product_id, url)")).
			WithArgs(int64(1), "http://example.com/image.jpg").
			WillReturnRows(sqlmock.NewRows([]string{"id", "url", "product_id", "created_at"}).
				AddRow(10, "http://example.com/image.jpg", 1, now))

		img, err := NewImageRepository(db).Create(ctx, 1, "http://example.com/image.jpg")
		require.NoError(t, err)
		assert.Equal(t, int64(10), img.ID)
		assert.Equal(t, int64(1), img.ProductID)
	})

	t.Run("list", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM images")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "url", "product_id", "created_at"}).
				AddRow(10, "http://example.com/a.jpg", 1, now).
				AddRow(11, "http://example.com/b.jpg", 1, now))

		images, err := NewImageRepository(db).FindByProductID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, "http://example.com/b.jpg", images[1].URL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
