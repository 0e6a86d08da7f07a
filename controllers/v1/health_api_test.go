package apiv1

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"hr-admin-backend/db"
)

func TestHealthApi(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	// ping при открытии соединения
	mock.ExpectPing()
	gormDB, err := db.Open(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	prev := db.DB
	db.DB = gormDB
	t.Cleanup(func() { db.DB = prev })

	app := fiber.New()
	InitHealthApiRouters(app)

	t.Run(`database is reachable`, func(t *testing.T) {
		mock.ExpectPing()
		status, body := doRequest(t, app, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ok", body["data"])
	})

	t.Run(`database is down`, func(t *testing.T) {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		status, body := doRequest(t, app, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.Equal(t, false, body["success"])
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
