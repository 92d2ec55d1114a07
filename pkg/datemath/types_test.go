package datemath_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-dashboard/pkg/datemath"
)

func TestDateArithmetic(t *testing.T) {
	d := datemath.Date{Year: 2024, Month: time.February, Day: 28}

	assert.Equal(t, datemath.Date{Year: 2024, Month: time.February, Day: 29}, d.AddDays(1))
	assert.Equal(t, datemath.Date{Year: 2024, Month: time.March, Day: 1}, d.AddDays(2))
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))
	assert.True(t, d.Equal(datemath.DateOf(time.Date(2024, 2, 28, 23, 0, 0, 0, time.UTC))))
	assert.Equal(t, "2024-02-28", d.String())
	assert.False(t, d.IsZero())
	assert.True(t, datemath.Date{}.IsZero())
}

func TestDateJSON(t *testing.T) {
	d := datemath.Date{Year: 2024, Month: time.August, Day: 5}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-08-05"`, string(b))

	var payload struct {
		Due *datemath.Date `json:"due"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-08-05"}`), &payload))
	require.NotNil(t, payload.Due)
	assert.Equal(t, d, *payload.Due)

	payload.Due = nil
	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &payload))
	assert.Nil(t, payload.Due)

	assert.Error(t, json.Unmarshal([]byte(`{"due":"05/08/2024"}`), &payload))
}

func TestParseDate(t *testing.T) {
	d, err := datemath.ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), d.In(time.UTC))

	_, err = datemath.ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	assert.True(t, datemath.FixedClock{T: fixed}.Now().Equal(fixed))

	loc := time.FixedZone("UTC+7", 7*60*60)
	now := datemath.NewSystemClock(loc).Now()
	assert.Equal(t, loc, now.Location())
}
