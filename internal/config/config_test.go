package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "https://login.smoobu.com", cfg.PMS.BaseURL)
	assert.Equal(t, "#", cfg.PMS.BookingBase)
	assert.False(t, cfg.PMS.UseMock)
	assert.Empty(t, cfg.PMS.UnitIDs)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SMOOBU_API_KEY", "secret")
	t.Setenv("SMOOBU_CUSTOMER_ID", "  cust-7  ")
	t.Setenv("SMOOBU_APARTMENT_IDS", " 2113656, 2254116 ,, 2646938 ")
	t.Setenv("USE_MOCK", " 1 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "secret", cfg.PMS.APIKey)
	assert.Equal(t, "cust-7", cfg.PMS.CustomerID, "customer id is trimmed")
	assert.Equal(t, []string{"2113656", "2254116", "2646938"}, cfg.PMS.UnitIDs)
	assert.True(t, cfg.PMS.UseMock, "USE_MOCK is trimmed before comparison")
}

func TestLoad_UseMockRequiresLiteralOne(t *testing.T) {
	for _, v := range []string{"true", "yes", "0", "11"} {
		t.Setenv("USE_MOCK", v)
		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.PMS.UseMock, "USE_MOCK=%q must not enable mocks", v)
	}
}

func TestSplitIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "2113656", []string{"2113656"}},
		{"trims and drops empties", " a ,, b , ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitIDList(tt.raw))
		})
	}
}
