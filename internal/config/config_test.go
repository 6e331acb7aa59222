package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	c := config.New()
	c.Postgres.User = "orders"
	c.Postgres.Password = "secret"
	return c
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "defaults with credentials", mutate: func(c *config.Config) {}},
		{name: "missing postgres user", mutate: func(c *config.Config) { c.Postgres.User = "" }, wantErr: true},
		{name: "unknown env", mutate: func(c *config.Config) { c.Env = "qa" }, wantErr: true},
		{name: "zero auto reject window", mutate: func(c *config.Config) { c.Orders.AutoRejectMinutes = 0 }, wantErr: true},
		{name: "max page size below page size", mutate: func(c *config.Config) { c.Orders.MaxPageSize = 5 }, wantErr: true},
		{name: "unknown scheduler backend", mutate: func(c *config.Config) { c.Scheduler.Backend = "cron" }, wantErr: true},
		{
			name: "kafka ignored by local scheduler",
			mutate: func(c *config.Config) {
				c.Scheduler.Backend = config.SchedulerLocal
				c.Kafka.Brokers = nil
			},
		},
		{
			name: "kafka validated by kafka scheduler",
			mutate: func(c *config.Config) {
				c.Scheduler.Backend = config.SchedulerKafka
				c.Kafka.Brokers = nil
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(&c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_ReadsEnv(t *testing.T) {
	t.Setenv("AUTO_REJECT_MINUTES", "7")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("SCHEDULER_BACKEND", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	c := config.New()

	assert.Equal(t, 7*time.Minute, c.Orders.AutoRejectAfter())
	assert.Equal(t, 30*time.Second, c.Scheduler.SweepInterval)
	assert.Equal(t, config.SchedulerKafka, c.Scheduler.Backend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
}
