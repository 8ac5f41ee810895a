package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kariqs/storefront/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_WithLimit(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows(productColumns).
		AddRow(1, now, now, nil, "Mug", "Stoneware mug", "12.50", "/img/mug.jpg").
		AddRow(2, now, now, nil, "Tote", "Linen tote", "18.00", "/img/tote.jpg")
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`.`deleted_at` IS NULL ORDER BY id LIMIT").
		WillReturnRows(rows)

	products, err := NewProducts(db).ListProducts(context.Background(), 8)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, "Mug", products[0].Name)
	assert.True(t, decimal.RequireFromString("12.5").Equal(products[0].Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_AllWhenNoLimit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`.`deleted_at` IS NULL ORDER BY id$").
		WillReturnRows(sqlmock.NewRows(productColumns))

	products, err := NewProducts(db).ListProducts(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_Found(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(5, now, now, nil, "Lamp", "Desk lamp", "10.00", "/img/lamp.jpg"))

	product, err := NewProducts(db).GetProduct(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, uint(5), product.ID)
	assert.Equal(t, "10", product.Price.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(productColumns))

	product, err := NewProducts(db).GetProduct(context.Background(), 9)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("bad connection")

	mock.ExpectQuery("SELECT \\* FROM `products`").WillReturnError(boom)

	_, err := NewProducts(db).GetProduct(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrProductNotFound))
}

func TestCreateProduct(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO `products`").
		WillReturnResult(sqlmock.NewResult(11, 1))

	product := models.Product{Name: "Mug", Description: "Mug", Price: decimal.RequireFromString("3.20"), Image: "x.jpg"}
	err := NewProducts(db).CreateProduct(context.Background(), &product)

	require.NoError(t, err)
	assert.Equal(t, uint(11), product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetProductImage(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE `products` SET `image`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `products` SET `image`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 0))

	products := NewProducts(db)
	assert.NoError(t, products.SetProductImage(context.Background(), 1, "https://bucket/img.jpg"))
	assert.ErrorIs(t, products.SetProductImage(context.Background(), 2, "https://bucket/img.jpg"), ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
