package cmd_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"fooddelivery/cmd"
	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8082")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "username")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "food_delivery")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("STRICT_TRANSITIONS", "true")
	t.Setenv("STATISTICS_REPORT_SCHEDULE", "*/10 * * * * *")

	config, err := cmd.ConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "8082", config.HTTPPort)
	assert.True(t, config.StrictTransitions)
	assert.Equal(t, "*/10 * * * * *", config.StatisticsReportSchedule)
	assert.Equal(t,
		"host=localhost port=5432 user=username password=secret dbname=food_delivery sslmode=disable",
		config.DSN())
}

func TestConfigFromEnv_InvalidStrictTransitions(t *testing.T) {
	t.Setenv("STRICT_TRANSITIONS", "sometimes")

	_, err := cmd.ConfigFromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRICT_TRANSITIONS")
}

func TestCompositionRoot_StatisticsIsShared(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{}, nil, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Same(t, root.Statistics(), root.Statistics())
	assert.NotNil(t, root.CreateServer())
	assert.NotNil(t, root.CreateJobManager())
}

func TestFuncObserverFactory(t *testing.T) {
	var out bytes.Buffer
	factory := cmd.FuncObserverFactory(func(o *order.Order) []order.Observer {
		return services.StandardNotifiers(&out, o)
	})
	c, err := client.NewClient("Ana", "555-0101", "Calle 1 #23")
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant("1", "La Esquina", "Comida casera")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), c, r)
	require.NoError(t, err)

	for _, obs := range factory.Observers(o) {
		o.AddObserver(obs)
	}
	require.NoError(t, o.ChangeStatus(order.Ready))

	assert.Equal(t, 3, o.ObserverCount())
	assert.Contains(t, out.String(), "Courier notification: order status READY")
}
