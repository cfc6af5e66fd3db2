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

func newValidator(t *testing.T) *validation.Validator {
	db := dbtest.Open(t)
	dbtest.SeedIDs(t, db, "promoters", 1)
	dbtest.SeedIDs(t, db, "events", 1)
	dbtest.SeedIDs(t, db, "commitment_states", 1)
	return validation.New(db, zaptest.NewLogger(t))
}

func validRequest() CommitmentRequest {
	start := time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)
	return CommitmentRequest{
		PromoterID:        1,
		EventID:           1,
		Role:              "bar",
		StartTime:         start,
		EndTime:           start.Add(8 * time.Hour),
		CommitmentStateID: 1,
	}
}

func TestCommitmentRequestValidation(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	req := validRequest()
	require.NoError(t, v.Validate(ctx, &req))

	tests := []struct {
		name   string
		mutate func(*CommitmentRequest)
		field  string
		msg    string
	}{
		{
			name:   "unknown promoter",
			mutate: func(r *CommitmentRequest) { r.PromoterID = 42 },
			field:  "promoter_id",
			msg:    "The selected promoter id is invalid.",
		},
		{
			name:   "end before start",
			mutate: func(r *CommitmentRequest) { r.EndTime = r.StartTime.Add(-time.Minute) },
			field:  "end_time",
			msg:    "The end time field must be a date after start time.",
		},
		{
			name:   "end equals start",
			mutate: func(r *CommitmentRequest) { r.EndTime = r.StartTime },
			field:  "end_time",
			msg:    "The end time field must be a date after start time.",
		},
		{
			name:   "missing role",
			mutate: func(r *CommitmentRequest) { r.Role = "" },
			field:  "role",
			msg:    "The role field is required.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			var verrs *validation.Errors
			require.ErrorAs(t, v.Validate(ctx, &req), &verrs)
			assert.Equal(t, []string{tt.field}, verrs.FieldNames())
			assert.Equal(t, []string{tt.msg}, verrs.Fields()[tt.field])
		})
	}
}
