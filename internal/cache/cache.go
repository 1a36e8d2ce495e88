// Package cache memoizes explanations keyed by input and tuning options.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/bytedance/sonic"

	"github.com/kdduha/slangbot/internal/kv"
	"github.com/kdduha/slangbot/internal/models"
)

const keyPrefix = "explanation:"

type entry struct {
	ExpiresAt time.Time `json:"expiresAt"`
	Text      string    `json:"text"`
}

// Explanations stores explanation text in a kv.Store. Expiry is kept in the
// value so backends without native TTLs behave the same.
type Explanations struct {
	store kv.Store
	ttl   time.Duration
	now   func() time.Time
}

func New(store kv.Store, ttl time.Duration) *Explanations {
	return &Explanations{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *Explanations) Get(ctx context.Context, input string, params models.ExplanationParameters) (string, bool, error) {
	key, err := Key(input, params)
	if err != nil {
		return "", false, err
	}

	raw, found, err := c.store.Get(ctx, key)
	if err != nil || !found {
		return "", false, err
	}

	var e entry
	if err := sonic.UnmarshalString(raw, &e); err != nil {
		return "", false, c.store.Delete(ctx, key)
	}
	if c.ttl > 0 && c.now().After(e.ExpiresAt) {
		return "", false, c.store.Delete(ctx, key)
	}
	return e.Text, true, nil
}

func (c *Explanations) Set(ctx context.Context, input string, params models.ExplanationParameters, text string) error {
	key, err := Key(input, params)
	if err != nil {
		return err
	}

	raw, err := sonic.MarshalString(entry{ExpiresAt: c.now().Add(c.ttl), Text: text})
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, raw)
}

// Key hashes the request so arbitrary user input makes a bounded key.
func Key(input string, params models.ExplanationParameters) (string, error) {
	data, err := sonic.Marshal(models.SharedRecipe{UserInput: input, TuningOptions: params})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}
