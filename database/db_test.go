package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stubEnv(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestDSNFromEnvPrefersDatabaseURL(t *testing.T) {
	getenv := stubEnv(map[string]string{
		"DATABASE_URL": "postgres://app:secret@db:5432/hexfit",
		"DB_HOST":      "ignored",
	})
	assert.Equal(t, "postgres://app:secret@db:5432/hexfit", dsnFromEnv(getenv))
}

func TestDSNFromEnvAssemblesParts(t *testing.T) {
	getenv := stubEnv(map[string]string{
		"DB_HOST":     "db.internal",
		"DB_PORT":     "6543",
		"DB_USER":     "hexfit",
		"DB_PASSWORD": "s3cret",
		"DB_NAME":     "hexfit_prod",
		"DB_SSLMODE":  "require",
	})
	want := "host=db.internal port=6543 user=hexfit password=s3cret dbname=hexfit_prod sslmode=require"
	assert.Equal(t, want, dsnFromEnv(getenv))
}

func TestDSNFromEnvDefaults(t *testing.T) {
	want := "host=localhost port=5432 user=postgres password= dbname=hexfit sslmode=disable"
	assert.Equal(t, want, dsnFromEnv(stubEnv(nil)))
}

func TestEnvIntParsing(t *testing.T) {
	assert.Equal(t, 25, envInt(stubEnv(map[string]string{"DB_MAX_OPEN_CONNS": "25"}), "DB_MAX_OPEN_CONNS", 100))
	assert.Equal(t, 100, envInt(stubEnv(nil), "DB_MAX_OPEN_CONNS", 100))
	assert.Equal(t, 100, envInt(stubEnv(map[string]string{"DB_MAX_OPEN_CONNS": "lots"}), "DB_MAX_OPEN_CONNS", 100))
	assert.Equal(t, 100, envInt(stubEnv(map[string]string{"DB_MAX_OPEN_CONNS": "-1"}), "DB_MAX_OPEN_CONNS", 100))
}

func TestEnvDurationParsing(t *testing.T) {
	assert.Equal(t, 30*time.Minute, envDuration(stubEnv(map[string]string{"DB_CONN_MAX_LIFETIME": "30m"}), "DB_CONN_MAX_LIFETIME", time.Hour))
	assert.Equal(t, time.Hour, envDuration(stubEnv(nil), "DB_CONN_MAX_LIFETIME", time.Hour))
	assert.Equal(t, time.Hour, envDuration(stubEnv(map[string]string{"DB_CONN_MAX_LIFETIME": "soon"}), "DB_CONN_MAX_LIFETIME", time.Hour))
}
