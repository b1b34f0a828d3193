package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pledger/internal/database/migrations"
	"github.com/MrJamesThe3rd/pledger/internal/testutil"
)

func TestApply_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	// NewTestDB already applied once; a second run must be a no-op.
	require.NoError(t, migrations.Apply(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestPledges_AppendOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	testutil.TruncateAll(t, ctx, db)

	initiativeID := testutil.InsertInitiative(t, ctx, db, "active", 50000, 10)
	pledgeID := testutil.InsertPledge(t, ctx, db, initiativeID, testutil.NewUserID(), "self", 1500, "gauteng", "", testutil.Now())

	_, err := db.ExecContext(ctx, `UPDATE pledges SET amount = 1 WHERE id = $1`, pledgeID)
	assert.Error(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM pledges WHERE id = $1`, pledgeID)
	assert.Error(t, err)
}
