package warehouse

import (
	"context"
	"log/slog"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/domain"
)

func TestPingMapsToConnectionError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	client := NewWithDB(db, &config.Config{Driver: config.DriverSnowflake}, slog.New(slog.DiscardHandler))

	mock.ExpectPing()
	require.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(assert.AnError)
	err = client.Ping(context.Background())
	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestClientAccessors(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{Driver: config.DriverSnowflake, Database: "FINANCE", Schema: "PUBLIC"}
	client := NewWithDB(db, cfg, slog.New(slog.DiscardHandler))

	assert.Equal(t, db, client.DB())
	assert.Equal(t, "FINANCE", client.Database())
	assert.Equal(t, config.DriverSnowflake, client.Dialect())
	assert.Equal(t, "PUBLIC", client.FixedSchema())
}
