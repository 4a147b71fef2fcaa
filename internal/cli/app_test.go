package cli

import (
	"bytes"
	"testing"
	"time"

	"task-filter/internal/api"
	"task-filter/internal/config"
	"task-filter/internal/domain"
	"task-filter/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp returns an App backed by an in-memory database whose output
// is captured in the returned buffer.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	var out bytes.Buffer
	app := NewAppWithConfig(api.New(repo), config.NewConfig()).WithOutput(&out)
	return app, &out
}

// fixTimeNow pins timeNow for the duration of a test.
func fixTimeNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func TestNewApp_Defaults(t *testing.T) {
	app := NewApp(nil)
	assert.Equal(t, "2006-01-02", app.config.Time.DisplayFormat)

	app = NewAppWithConfig(nil, nil)
	assert.NotNil(t, app.config)
}

func TestApp_FormatDate(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Time.DisplayFormat = "02/01/2006"
	app := NewAppWithConfig(nil, cfg)

	assert.Equal(t, "15/05/2024", app.formatDate(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseToday(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)
	fixTimeNow(t, now)

	got, err := parseToday("")
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseToday(" 2023-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local), got)

	_, err = parseToday("31/12/2023")
	assert.Error(t, err)
}

func TestParseFilterID(t *testing.T) {
	id, err := parseFilterID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, arg := range []string{"0", "-1", "abc", ""} {
		_, err := parseFilterID(arg)
		assert.Error(t, err, arg)
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("tags", "1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)

	ids, err = parseIDList("tags", "")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	_, err = parseIDList("tags", "1,two")
	assert.Error(t, err)
}

func TestParseOperator(t *testing.T) {
	op, err := parseOperator("due-op", ">=")
	require.NoError(t, err)
	assert.Equal(t, domain.OperatorGreaterThanOrEqual, op)

	_, err = parseOperator("due-op", "around")
	assert.Error(t, err)
}
