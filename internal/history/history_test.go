package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/kv"
	"github.com/kdduha/slangbot/internal/models"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t }
}

func newLog(t *testing.T, store kv.Store) *Log {
	t.Helper()
	return New(store, zap.NewNop(), WithClock(fixedClock()))
}

func TestAppend_NewestFirstWithMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	l := newLog(t, kv.NewMemoryStore())

	first, err := l.Append(ctx, "rizz", models.DefaultExplanationParameters(), "charisma")
	require.NoError(t, err)
	second, err := l.Append(ctx, "delulu", models.DefaultExplanationParameters(), "delusional")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, "2026-01-02T03:04:05Z", first.Timestamp)

	entries := l.List(ctx, "")
	require.Len(t, entries, 2)
	assert.Equal(t, "delulu", entries[0].UserInput)
	assert.Equal(t, "rizz", entries[1].UserInput)
}

func TestAppend_TruncatesToMostRecent(t *testing.T) {
	ctx := context.Background()
	l := New(kv.NewMemoryStore(), zap.NewNop())

	for i := 0; i < MaxEntries+1; i++ {
		_, err := l.Append(ctx, fmt.Sprintf("term-%d", i), models.DefaultExplanationParameters(), "x")
		require.NoError(t, err)
	}

	entries := l.List(ctx, "")
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, fmt.Sprintf("term-%d", MaxEntries), entries[0].UserInput)
	assert.Equal(t, "term-1", entries[MaxEntries-1].UserInput)
	for _, e := range entries {
		assert.NotEqual(t, "term-0", e.UserInput)
	}
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].ID, entries[i].ID)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	l := newLog(t, store)

	a, err := l.Append(ctx, "a", models.DefaultExplanationParameters(), "x")
	require.NoError(t, err)
	b, err := l.Append(ctx, "b", models.DefaultExplanationParameters(), "y")
	require.NoError(t, err)

	before, _, _ := store.Get(ctx, KeyHistory)
	require.NoError(t, l.Delete(ctx, 12345))
	after, _, _ := store.Get(ctx, KeyHistory)
	assert.Equal(t, before, after)

	require.NoError(t, l.Delete(ctx, a.ID))
	entries := l.List(ctx, "")
	require.Len(t, entries, 1)
	assert.Equal(t, b.ID, entries[0].ID)

	_, ok := l.Get(ctx, a.ID)
	assert.False(t, ok)
	got, ok := l.Get(ctx, b.ID)
	assert.True(t, ok)
	assert.Equal(t, "y", got.GeneratedPrompt)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	l := newLog(t, kv.NewMemoryStore())
	_, err := l.Append(ctx, "a", models.DefaultExplanationParameters(), "x")
	require.NoError(t, err)

	require.NoError(t, l.Clear(ctx))
	assert.Empty(t, l.List(ctx, ""))
}

func TestList_Search(t *testing.T) {
	ctx := context.Background()
	l := newLog(t, kv.NewMemoryStore())
	for _, in := range []string{"What is RIZZ?", "skibidi", "rizzler"} {
		_, err := l.Append(ctx, in, models.DefaultExplanationParameters(), "x")
		require.NoError(t, err)
	}

	got := l.List(ctx, "  Rizz ")
	require.Len(t, got, 2)
	assert.Equal(t, "rizzler", got[0].UserInput)
	assert.Equal(t, "What is RIZZ?", got[1].UserInput)
}

func TestLoad_ToleratesCorruptValue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyHistory, "{not json"))
	require.NoError(t, store.Set(ctx, KeySoundPreference, "maybe"))

	l := newLog(t, store)
	assert.Empty(t, l.List(ctx, ""))
	assert.True(t, l.SoundEnabled(ctx))

	_, err := l.Append(ctx, "recovered", models.DefaultExplanationParameters(), "x")
	require.NoError(t, err)
	assert.Len(t, l.List(ctx, ""), 1)
}

func TestIDsStayAboveStoredEntries(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	require.NoError(t, store.Set(ctx, KeyHistory, fmt.Sprintf(`[{"id":%d,"userInput":"old"}]`, future)))

	l := newLog(t, store)
	e, err := l.Append(ctx, "new", models.DefaultExplanationParameters(), "x")
	require.NoError(t, err)
	assert.Greater(t, e.ID, future)
}

func TestSoundPreference(t *testing.T) {
	ctx := context.Background()
	l := newLog(t, kv.NewMemoryStore())

	assert.True(t, l.SoundEnabled(ctx))
	require.NoError(t, l.SetSoundEnabled(ctx, false))
	assert.False(t, l.SoundEnabled(ctx))
}

type brokenStore struct {
	kv.Store
}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func TestPersistenceFailures(t *testing.T) {
	ctx := context.Background()
	l := newLog(t, brokenStore{})

	assert.Empty(t, l.List(ctx, ""))
	assert.True(t, l.SoundEnabled(ctx))

	_, err := l.Append(ctx, "a", models.DefaultExplanationParameters(), "x")
	assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
	assert.True(t, apperrors.Is(l.SetSoundEnabled(ctx, true), apperrors.KindPersistence))
}

// flakyStore fails the next failGets reads and passes everything else through.
type flakyStore struct {
	kv.Store
	failGets int
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGets > 0 {
		s.failGets--
		return "", false, errors.New("connection reset")
	}
	return s.Store.Get(ctx, key)
}

func TestReadFailureDoesNotOverwriteHistory(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: kv.NewMemoryStore()}
	l := newLog(t, store)
	for i := range 10 {
		_, err := l.Append(ctx, fmt.Sprintf("term %d", i), models.DefaultExplanationParameters(), "x")
		require.NoError(t, err)
	}
	first := l.List(ctx, "")[9]

	store.failGets = 1
	_, err := l.Append(ctx, "lost", models.DefaultExplanationParameters(), "x")
	assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
	assert.Len(t, l.List(ctx, ""), 10)

	store.failGets = 1
	assert.True(t, apperrors.Is(l.Delete(ctx, first.ID), apperrors.KindPersistence))
	assert.Len(t, l.List(ctx, ""), 10)

	_, err = l.Append(ctx, "kept", models.DefaultExplanationParameters(), "x")
	require.NoError(t, err)
	assert.Len(t, l.List(ctx, ""), 11)
}
