//go:build integration

package dao

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/db/dbtest"
)

func TestStorePostgres(t *testing.T) {
	gdb := dbtest.NewPostgres(t)
	require.NoError(t, InitTables(gdb))

	runStoreSuite(t, gdb)
}
