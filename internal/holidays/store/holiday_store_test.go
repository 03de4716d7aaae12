package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

var _ Store = (*SQLiteHolidayStore)(nil)

func newTestStore(t *testing.T) *SQLiteHolidayStore {
	t.Helper()
	s, err := NewSQLiteHolidayStore(Config{Path: filepath.Join(t.TempDir(), "nested", "holidays.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h, err := s.Add(ctx, "de", "2018-12-25", " Christmas ")
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "Christmas", h.Name)

	_, err = s.Add(ctx, "de", "2018-05-21", "Whit Monday")
	require.NoError(t, err)
	_, err = s.Add(ctx, "us", "2018-05-28", "Memorial Day")
	require.NoError(t, err)

	list, err := s.List(ctx, "de")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2018-05-21", list[0].Date)
	assert.Equal(t, "Whit Monday", list[0].Name)
	assert.False(t, list[0].CreatedAt.IsZero())

	dates, err := s.Dates(ctx, "de")
	require.NoError(t, err)
	assert.Equal(t, []string{"2018-05-21", "2018-12-25"}, dates)

	empty, err := s.Dates(ctx, "fr")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAddDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "de", "2018-12-25", "")
	require.NoError(t, err)

	_, err = s.Add(ctx, "de", "2018-12-25", "again")
	require.Error(t, err)
	assert.True(t, bizerror.HasCode(err, bizerror.CodeDuplicateEntry))

	_, err = s.Add(ctx, "us", "2018-12-25", "")
	assert.NoError(t, err, "calendars are independent")
}

func TestAddInvalidDate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(context.Background(), "de", "25.12.2018", "")
	require.Error(t, err)
	assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidInput))
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "de", "2018-12-25", "")
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "de", "2018-12-25"))

	err = s.Remove(ctx, "de", "2018-12-25")
	require.Error(t, err)
	assert.True(t, bizerror.HasCode(err, bizerror.CodeNotFound))

	dates, err := s.Dates(ctx, "de")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.db")
	ctx := context.Background()

	s, err := NewSQLiteHolidayStore(Config{Path: path})
	require.NoError(t, err)
	_, err = s.Add(ctx, "de", "2018-10-03", "Unity Day")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLiteHolidayStore(Config{Path: path})
	require.NoError(t, err)
	defer s.Close()

	dates, err := s.Dates(ctx, "de")
	require.NoError(t, err)
	assert.Equal(t, []string{"2018-10-03"}, dates)
}
