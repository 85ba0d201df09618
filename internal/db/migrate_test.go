package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigratedDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openMigratedDB(t)

	expected := []string{"coordinates", "volumes", "terrain_types", "audit_log", "movements"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_VolumeRejectsNonPositiveDimensions(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO volumes (width, length, height, total) VALUES (0, 1, 1, 0)`)
	assert.Error(t, err)
}

func TestMigrate_TerrainCodeConstraint(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO terrain_types (code, swell_factor) VALUES (9, 0.8)`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO terrain_types (code, swell_factor) VALUES (2, 0.81)`)
	assert.NoError(t, err)
}

func TestMigrate_DescriptorUnique(t *testing.T) {
	db := openMigratedDB(t)

	insertParts := func() (int64, int64, int64) {
		v, err := db.Exec(`INSERT INTO volumes (width, length, height, total) VALUES (1, 1, 1, 1)`)
		require.NoError(t, err)
		tt, err := db.Exec(`INSERT INTO terrain_types (code, swell_factor) VALUES (1, 0.83)`)
		require.NoError(t, err)
		c, err := db.Exec(`INSERT INTO coordinates (east, north) VALUES (1, 1)`)
		require.NoError(t, err)
		vid, _ := v.LastInsertId()
		tid, _ := tt.LastInsertId()
		cid, _ := c.LastInsertId()
		return vid, tid, cid
	}

	vid, tid, cid := insertParts()
	_, err := db.Exec(`INSERT INTO movements (id, descriptor, volume_id, terrain_id, coordinates_id, created_at, updated_at)
		VALUES ('m1', 'A1', ?, ?, ?, '', '')`, vid, tid, cid)
	require.NoError(t, err)

	vid, tid, cid = insertParts()
	_, err = db.Exec(`INSERT INTO movements (id, descriptor, volume_id, terrain_id, coordinates_id, created_at, updated_at)
		VALUES ('m2', 'A1', ?, ?, ?, '', '')`, vid, tid, cid)
	assert.Error(t, err)
}
