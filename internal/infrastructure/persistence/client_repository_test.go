package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/smallbiz/backend/internal/domain/partner"
	"github.com/smallbiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM DB over a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newMockClientRepository(t *testing.T) (*GormClientRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormClientRepository(gormDB), mock, mockDB
}

func TestGormClientRepository_FindByID(t *testing.T) {
	t.Run("finds existing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
			AddRow(clientID, "Acme Corp", "billing@acme.test", "555-0100")

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(clientID, 1).
			WillReturnRows(rows)

		client, err := repo.FindByID(context.Background(), clientID)

		assert.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, clientID, client.ID)
		assert.Equal(t, "Acme Corp", client.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(clientID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		client, err := repo.FindByID(context.Background(), clientID)

		assert.Nil(t, client)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_FindAll(t *testing.T) {
	t.Run("orders clients by name", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
			AddRow(uuid.New(), "Alpha Ltd", "a@alpha.test", "555-0001").
			AddRow(uuid.New(), "Beta GmbH", "b@beta.test", "555-0002")

		mock.ExpectQuery(`SELECT \* FROM "clients" ORDER BY name ASC`).
			WillReturnRows(rows)

		clients, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, clients, 2)
		assert.Equal(t, "Alpha Ltd", clients[0].Name)
		assert.Equal(t, "Beta GmbH", clients[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clients" ORDER BY name ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone"}))

		clients, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, clients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Save(t *testing.T) {
	t.Run("updates existing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		client := &partner.Client{
			ID:    uuid.New(),
			Name:  "Acme Corp",
			Email: "billing@acme.test",
			Phone: "555-0100",
		}

		mock.ExpectExec(`UPDATE "clients" SET .* WHERE "id" = \$4`).
			WithArgs("Acme Corp", "billing@acme.test", "555-0100", client.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(context.Background(), client)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Delete(t *testing.T) {
	t.Run("deletes existing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), clientID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), clientID), shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockClientRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
