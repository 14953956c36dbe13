package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleDate_Unmarshal(t *testing.T) {
	for _, in := range []string{`"2025-03-31"`, `"2025-03-31T23:10:00Z"`} {
		var d FlexibleDate
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.Equal(t, "2025-03-31", d.String())
		assert.Zero(t, d.Hour())
	}

	var d FlexibleDate
	err := json.Unmarshal([]byte(`"31/03/2025"`), &d)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFlexibleDate_MarshalsDateOnly(t *testing.T) {
	d, err := ParseFlexibleDate("2024-12-31T10:00:00Z")
	require.NoError(t, err)

	b, err := json.Marshal(CompanyAccount{PeriodEndOn: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"period_end_on":"2024-12-31"}`, string(b))
}
