// Package history keeps the bounded log of successful explanations and the
// sound preference in the persisted key-value store.
//
// The log is stored whole under one key and rewritten on every mutation.
// Reads never fail: an absent or corrupt value falls back to the default and
// is logged.
package history

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/kv"
	"github.com/kdduha/slangbot/internal/metrics"
	"github.com/kdduha/slangbot/internal/models"
)

const (
	KeyHistory         = "history"
	KeySoundPreference = "soundPreference"

	// MaxEntries bounds the log; the oldest entries are evicted first.
	MaxEntries = 50
)

type Log struct {
	store  kv.Store
	logger *zap.Logger
	now    func() time.Time

	// mu serializes read-modify-write cycles and id assignment.
	mu     sync.Mutex
	lastID int64
}

type Option func(*Log)

// WithClock overrides the time source used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

func New(store kv.Store, logger *zap.Logger, opts ...Option) *Log {
	l := &Log{
		store:  store,
		logger: logger.Named("history"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns entries newest first. A non-empty query keeps entries whose
// user input contains it, case-insensitively.
func (l *Log) List(ctx context.Context, query string) []models.HistoryEntry {
	l.mu.Lock()
	entries := l.load(ctx)
	l.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	return slices.DeleteFunc(entries, func(e models.HistoryEntry) bool {
		return !strings.Contains(strings.ToLower(e.UserInput), query)
	})
}

// Get returns the entry with the given id.
func (l *Log) Get(ctx context.Context, id int64) (models.HistoryEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.load(ctx) {
		if e.ID == id {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}

// Append records a successful explanation at the head of the log.
func (l *Log) Append(ctx context.Context, userInput string, params models.ExplanationParameters, explanation string) (models.HistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.loadForWrite(ctx)
	if err != nil {
		return models.HistoryEntry{}, err
	}
	if len(entries) > 0 && entries[0].ID > l.lastID {
		l.lastID = entries[0].ID
	}

	now := l.now().UTC()
	entry := models.HistoryEntry{
		ID:              l.nextID(now),
		Timestamp:       now.Format(time.RFC3339Nano),
		UserInput:       userInput,
		TuningOptions:   params,
		GeneratedPrompt: explanation,
	}

	entries = append([]models.HistoryEntry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	if err := l.save(ctx, entries); err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

// Delete removes one entry. Unknown ids are a no-op.
func (l *Log) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.loadForWrite(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(slices.Clone(entries), func(e models.HistoryEntry) bool {
		return e.ID == id
	})
	if len(kept) == len(entries) {
		return nil
	}
	return l.save(ctx, kept)
}

func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(ctx, []models.HistoryEntry{})
}

// SoundEnabled reports the stored sound preference, true when unset.
func (l *Log) SoundEnabled(ctx context.Context) bool {
	raw, found, err := l.store.Get(ctx, KeySoundPreference)
	if err != nil {
		l.logger.Warn("failed to read sound preference", zap.Error(err))
		return true
	}
	if !found {
		return true
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		l.logger.Warn("corrupt sound preference, using default", zap.String("value", raw))
		return true
	}
	return enabled
}

func (l *Log) SetSoundEnabled(ctx context.Context, enabled bool) error {
	if err := l.store.Set(ctx, KeySoundPreference, strconv.FormatBool(enabled)); err != nil {
		return apperrors.NewPersistence("failed to save sound preference", err)
	}
	return nil
}

// load is the tolerant read used for display: any failure yields an empty log.
func (l *Log) load(ctx context.Context) []models.HistoryEntry {
	entries, err := l.loadForWrite(ctx)
	if err != nil {
		l.logger.Warn("failed to read history, using empty log", zap.Error(err))
		return []models.HistoryEntry{}
	}
	return entries
}

// loadForWrite is the read step of a read-modify-write. A store error is
// returned so the caller does not overwrite entries it could not see. A
// corrupt value cannot be recovered and reads as an empty log.
func (l *Log) loadForWrite(ctx context.Context) ([]models.HistoryEntry, error) {
	raw, found, err := l.store.Get(ctx, KeyHistory)
	if err != nil {
		return nil, apperrors.NewPersistence("failed to read history", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []models.HistoryEntry{}, nil
	}

	var entries []models.HistoryEntry
	if err := sonic.UnmarshalString(raw, &entries); err != nil {
		l.logger.Warn("corrupt history, using empty log", zap.Error(err))
		return []models.HistoryEntry{}, nil
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

func (l *Log) save(ctx context.Context, entries []models.HistoryEntry) error {
	raw, err := sonic.MarshalString(entries)
	if err != nil {
		return apperrors.NewPersistence("failed to encode history", err)
	}
	if err := l.store.Set(ctx, KeyHistory, raw); err != nil {
		return apperrors.NewPersistence("failed to save history", err)
	}
	metrics.HistoryEntries(len(entries))
	return nil
}

// nextID is the millisecond timestamp, bumped to stay strictly increasing
// within this process.
func (l *Log) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}
