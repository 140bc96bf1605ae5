package tests

import (
	"context"
	"testing"
	"time"

	"plateshare/cart-svc/internal/domain"
	"plateshare/cart-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartPostgres_ListItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"item_id", "name", "price", "image", "quantity"}).
		AddRow("a", "Koshari", 100.0, "", 2).
		AddRow("b", "Falafel", 50.0, "falafel.png", 1)
	mock.ExpectQuery("SELECT item_id, name, price").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := storage.NewCartPostgres(db)
	items, err := repo.ListItems(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ItemID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartPostgres_UpsertItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs("u1", "a", "Koshari", 100.0, "", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := storage.NewCartPostgres(db)
	err = repo.UpsertItem(context.Background(), "u1", domain.CartItem{
		ItemID: "a", Name: "Koshari", Price: 100, Quantity: 3,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderPostgres_InsertOrder_SingleTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	order := &domain.Order{
		ID:             "o1",
		CustomerID:     "u1",
		CustomerName:   "Alice",
		CustomerEmail:  "alice@example.com",
		RestaurantID:   "r1",
		RestaurantName: "Cairo Kitchen",
		Items: []domain.CartItem{
			{ItemID: "a", Name: "Koshari", Price: 100, Quantity: 2},
		},
		Subtotal:  200,
		Tax:       28,
		Total:     228,
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs("o1", "a", "Koshari", 100.0, "", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := storage.NewOrderPostgres(db)
	require.NoError(t, repo.InsertOrder(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderPostgres_InsertOrder_RollsBackOnItemFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	order := &domain.Order{
		ID:     "o1",
		Status: domain.StatusPending,
		Items: []domain.CartItem{
			{ItemID: "a", Name: "Koshari", Price: 100, Quantity: 2},
		},
		CreatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := storage.NewOrderPostgres(db)
	require.Error(t, repo.InsertOrder(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("completed", "o1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := storage.NewOrderPostgres(db)
	rows, err := repo.UpdateStatus(context.Background(), "o1", "completed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
