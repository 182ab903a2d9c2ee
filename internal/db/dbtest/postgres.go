package dbtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "sit"
	pgPassword = "sit"
	pgDatabase = "sit_test"
)

// NewPostgres starts a disposable postgres container and returns a
// connection to it. The test is skipped when docker is not reachable.
func NewPostgres(t testing.TB) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	// Kill the container even if cleanup never runs.
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("host=localhost port=%s user=%s password=%s dbname=%s sslmode=disable",
		resource.GetPort("5432/tcp"), pgUser, pgPassword, pgDatabase)

	var gdb *gorm.DB
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		var openErr error
		gdb, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}
		sqlDB, openErr := gdb.DB()
		if openErr != nil {
			return openErr
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err)

	return gdb
}
