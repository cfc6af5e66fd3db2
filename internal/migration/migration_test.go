package migration

import (
	"io/fs"
	"strings"
	"testing"

	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	lookupdomain "github.com/smallbiznis/staffhub/internal/lookup/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/validation"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(embeddedMigrations, migrationsDir)
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(entry.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Positive(t, ups)
	assert.Equal(t, ups, downs)
}

func TestAutoMigrateCreatesResourceTables(t *testing.T) {
	db := dbtest.Open(t)
	log := zaptest.NewLogger(t)
	params := resource.Params{DB: db, Log: log, Validator: validation.New(db, log)}

	endpoints := []resource.Endpoint{
		resource.New[lookupdomain.Country, lookupdomain.CountryRequest, lookupdomain.CountryRequest](params, resource.Definition[lookupdomain.Country]{Name: resource.Countries}),
		resource.New[accessdomain.User, accessdomain.CreateUserRequest, accessdomain.UpdateUserRequest](params, resource.Definition[accessdomain.User]{Name: resource.Users}),
	}

	require.NoError(t, AutoMigrate(db, endpoints))
	for _, table := range []string{"countries", "users", "api_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
