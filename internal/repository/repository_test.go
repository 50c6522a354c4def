package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func newOrderRepository(db *gorm.DB) Repository[model.Order] {
	return NewRepository[model.Order](db, Mapping{
		UpdateColumns: []string{"name"},
	})
}

func orderRows(orders ...model.Order) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "updated_at", "created_at"})
	for _, o := range orders {
		rows.AddRow(o.ID, o.Name, o.UpdatedAt, o.CreatedAt)
	}
	return rows
}

func TestFindAllOrdersByUpdateTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY updated_at ASC`).
		WillReturnRows(orderRows(
			model.Order{ID: 1, Name: "oldest", UpdatedAt: now.Add(-time.Hour), CreatedAt: now.Add(-time.Hour)},
			model.Order{ID: 2, Name: "newest", UpdatedAt: now, CreatedAt: now},
		))

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "oldest", orders[0].Name)
	assert.Equal(t, "newest", orders[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(orderRows())

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommitsOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), &model.Order{Name: "order one"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackOnStatementError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &model.Order{Name: "order one"})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenContextCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnError(context.Canceled)
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &model.Order{Name: "order one"})
	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingRowRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 42, &model.Order{Name: "renamed"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReloadsRowInSameTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WillReturnRows(orderRows(model.Order{ID: 42, Name: "renamed", UpdatedAt: now, CreatedAt: now.Add(-time.Hour)}))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), 42, &model.Order{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), updated.ID)
	assert.Equal(t, "renamed", updated.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRollsBackOnStatementError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 42, &model.Order{Name: "renamed"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReportsAffectedCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders" WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRowThenFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	// a delete that matches nothing still commits and reports zero rows
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders" WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	count, err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, count)

	// the row stays gone: a follow-up lookup is a clean not-found
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(orderRows())

	_, err = repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRollsBackOnStatementError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders" WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), 42)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
