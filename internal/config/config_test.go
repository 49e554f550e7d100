// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "~", cfg.Discord.Prefix)
	assert.Equal(t, []string{"449076533223751691", "778454540814909472"}, cfg.Discord.AdminRoleIDs)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "TPCMemberPoints", cfg.Tables.MemberPoints)
	assert.Equal(t, "TPCStore", cfg.Tables.Store)
	assert.Equal(t, "TPCPurchases", cfg.Tables.Purchases)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("ADMIN_ROLE_IDS", "111, 222 ,333")
	t.Setenv("TABLE_MEMBER_POINTS", "Points")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.Discord.Prefix)
	assert.Equal(t, []string{"111", "222", "333"}, cfg.Discord.AdminRoleIDs)
	assert.Equal(t, "Points", cfg.Tables.MemberPoints)
	assert.Equal(t, 60, cfg.RateLimit.CommandsPerMinute)
}
