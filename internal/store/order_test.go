package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/orderdesk/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"order_id", "order_description", "order_status",
	"user_id", "user_name", "user_email",
}

func TestOrderRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT o.order_id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(1, "Pizza", "CREATED", 1, "FirstUser", "111abc@abc.com"))

	repo := NewOrderRepository(db)
	order, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Pizza", order.Description)
	assert.Equal(t, types.StatusCreated, order.Status)
	require.NotNil(t, order.User)
	assert.Equal(t, "FirstUser", order.User.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT o.order_id").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	repo := NewOrderRepository(db)
	_, err = repo.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT o.order_id").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(1, "Pizza", "CREATED", 1, "FirstUser", "111abc@abc.com").
			AddRow(2, "MilkShake", "IN_PROGRESS", 2, "SecondUser", "222abc@abc.com"))

	repo := NewOrderRepository(db)
	orders, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, types.StatusInProgress, orders[1].Status)
	assert.Equal(t, "SecondUser", orders[1].User.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Beer", "CREATED", 1).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(4))

	repo := NewOrderRepository(db)
	order := types.Order{
		Description: "Beer",
		Status:      types.StatusCreated,
		User:        &types.User{ID: 1, Name: "FirstUser"},
	}
	created, err := repo.Create(context.Background(), &order)

	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE orders").
		WithArgs("Pizza", "COMPLETED", 1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewOrderRepository(db)
	order := types.Order{
		ID:          99,
		Description: "Pizza",
		Status:      types.StatusCompleted,
		User:        &types.User{ID: 1},
	}
	_, err = repo.Update(context.Background(), &order)

	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
