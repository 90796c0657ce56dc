package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	migs, err := Runner{}.Load()
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "staffing_schema", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS ai_matches")
	assert.Len(t, migs[0].Checksum, 64)

	require.GreaterOrEqual(t, len(migs), 2)
	assert.Equal(t, int64(2), migs[1].Version)
	assert.Contains(t, migs[1].SQL, "ON skills (lower(name))")
}

func TestLoad_OrdersAndSkipsForeignFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"V10__later.sql":  {Data: []byte("SELECT 10;")},
		"V2__second.sql":  {Data: []byte("SELECT 2;")},
		"README.md":       {Data: []byte("ignored")},
		"V3_bad_name.sql": {Data: []byte("SELECT 3;")},
	}
	migs, err := Runner{FS: fsys}.Load()
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(2), migs[0].Version)
	assert.Equal(t, int64(10), migs[1].Version)
}

func TestLoad_RejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := Runner{FS: fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 1;")},
	}}.Load()
	assert.ErrorContains(t, err, "duplicate migration version")

	_, err = Runner{FS: fstest.MapFS{"V1__empty.sql": {Data: []byte("  \n")}}}.Load()
	assert.ErrorContains(t, err, "empty migration file")
}

func TestRun_NilDB(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))
	_, err := Runner{}.Status(context.Background(), nil)
	assert.Error(t, err)
}
