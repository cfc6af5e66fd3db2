package domain

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/staffhub/internal/validation"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTimeTrackingRequestValidation(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.SeedIDs(t, db, "employees", 1)
	dbtest.SeedIDs(t, db, "commitments", 5)
	dbtest.SeedIDs(t, db, "time_tracking_channels", 1)
	dbtest.SeedIDs(t, db, "time_tracking_states", 1)
	v := validation.New(db, zaptest.NewLogger(t))
	ctx := context.Background()

	start := time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)
	commitment := uint64(5)
	req := TimeTrackingRequest{
		EmployeeID:            1,
		CommitmentID:          &commitment,
		TimeTrackingChannelID: 1,
		TimeTrackingStateID:   1,
		StartTime:             start,
		EndTime:               start.Add(4 * time.Hour),
	}
	require.NoError(t, v.Validate(ctx, &req))

	req.CommitmentID = nil
	require.NoError(t, v.Validate(ctx, &req), "commitment is optional")

	req.EndTime = start.Add(-time.Hour)
	missing := uint64(6)
	req.CommitmentID = &missing
	var verrs *validation.Errors
	require.ErrorAs(t, v.Validate(ctx, &req), &verrs)
	assert.Equal(t, []string{"commitment_id", "end_time"}, verrs.FieldNames())
	assert.Equal(t, []string{"The end time field must be a date after start time."}, verrs.Fields()["end_time"])
}
