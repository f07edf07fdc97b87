package config

import (
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 20, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, planner.DefaultOptions(), cfg.PlannerOptions())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HIVE_ENV", "production")
	t.Setenv("HIVE_LISTEN_ADDR", ":9000")
	t.Setenv("HIVE_WORK_START", "08:00")
	t.Setenv("HIVE_WORK_END", "12:00")
	t.Setenv("HIVE_FOCUS_MINUTES", "50")
	t.Setenv("HIVE_BREAK_MINUTES", "10")
	t.Setenv("HIVE_SESSION_TTL", "2h")
	t.Setenv("HIVE_CORS_ORIGINS", "https://a.test, ,https://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOriginList())

	opts := cfg.PlannerOptions()
	assert.Equal(t, planner.MustClock("08:00"), opts.WindowStart)
	assert.Equal(t, planner.MustClock("12:00"), opts.WindowEnd)
	assert.Equal(t, 50*time.Minute, opts.Focus)
	assert.Equal(t, 10*time.Minute, opts.Break)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"bad clock":      {"HIVE_WORK_START", "9am"},
		"empty window":   {"HIVE_WORK_END", "09:00"},
		"zero focus":     {"HIVE_FOCUS_MINUTES", "0"},
		"negative break": {"HIVE_BREAK_MINUTES", "-1"},
		"not a number":   {"HIVE_RATE_LIMIT_RPS", "lots"},
		"bad duration":   {"HIVE_SESSION_TTL", "forever"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestResolveDBPath(t *testing.T) {
	cfg := &Config{DBPath: "/tmp/x.db"}
	p, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", p)

	t.Setenv("HOME", "/home/bee")
	cfg.DBPath = ""
	p, err = cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/bee/.hive/hive.db", p)
}

func TestRequireSessionSecret(t *testing.T) {
	assert.Error(t, (&Config{}).RequireSessionSecret())
	assert.NoError(t, (&Config{SessionSecret: "0123456789abcdef"}).RequireSessionSecret())
}

func TestLoad_IgnoresUnprefixedNames(t *testing.T) {
	t.Setenv("USER", "root")
	t.Setenv("LISTEN_ADDR", ":1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.User)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}
