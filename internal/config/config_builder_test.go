package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_MergesEarlierSourceFirst verifies that the first appended source
// wins for fields set in several sources, and later sources fill the gaps.
func TestBuild_MergesEarlierSourceFirst(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "from-env", TokenDuration: time.Hour},
			Server:  Server{HTTPAddress: ":9000"},
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
			Catalog: Catalog{ItemsPerPage: 5},
		},
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "from-flags", TokenIssuer: "issuer"},
			Catalog: Catalog{ItemsPerPage: 50},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 5, cfg.Catalog.ItemsPerPage)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FailsValidation verifies that a merged config missing required
// fields is rejected.
func TestBuild_FailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	_ = cfg
}

func TestWithJSON_MergesFileValues(t *testing.T) {
	var jsonCfg StructuredJSONConfig
	jsonCfg.Storage.DB.DSN = "postgres://json"
	jsonCfg.Auth.TokenSignKey = "json-key"
	jsonCfg.Auth.TokenDuration = Duration(time.Hour)
	jsonCfg.Server.HTTPAddress = ":7070"
	jsonCfg.Catalog.ItemsPerPage = 15
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 15, cfg.Catalog.ItemsPerPage)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}
