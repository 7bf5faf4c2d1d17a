package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tele1/storefront/internal/domain"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestProductRepo_FindBySlug(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepo(db)

	id := uuid.New()
	catID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name", "price", "category_id"}).
			AddRow(id, "argan-oil", "Argan Oil", 9.99, catID))
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "categories"\."id" =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(catID, "Hair"))

	p, err := repo.FindBySlug(context.Background(), "argan-oil")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Argan Oil", p.Name)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Hair", p.Category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_FindBySlug_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_SlugExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepo(db)

	exclude := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE slug = \$1 AND id <> \$2`).
		WithArgs("argan-oil", exclude).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.SlugExists(context.Background(), "argan-oil", exclude)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_List_StockBuckets(t *testing.T) {
	cases := []struct {
		name   string
		status string
		where  string
	}{
		{"out of stock is exactly zero", domain.StockOut, `products\.stock = 0`},
		{"stock of ten is still low", domain.StockLow, `products\.stock > 0 AND products\.stock <= 10`},
		{"in stock starts above ten", domain.StockIn, `products\.stock > 10`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewProductRepo(db)

			join := `LEFT JOIN categories ON categories\.id = products\.category_id`
			mock.ExpectQuery(`SELECT count\(\*\) FROM "products" ` + join + ` WHERE ` + tc.where).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery(`SELECT .* FROM "products" ` + join + ` WHERE ` + tc.where).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			_, _, err := repo.List(context.Background(), domain.ProductFilter{StockStatus: tc.status})
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepo_Count(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestOrderRepo_DeliveredRevenue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_amount\), 0\) FROM "orders" WHERE status = \$1`).
		WithArgs(string(domain.OrderStatusDelivered)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1234.5))

	revenue, err := repo.DeliveredRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.5, revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
