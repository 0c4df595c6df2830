package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
)

func TestNoop(t *testing.T) {
	var c FigureCache = Noop{}

	require.NoError(t, c.Set(context.Background(), "dep-picker", "Sales", chart.Histogram("Age", nil)))

	fig, err := c.Get(context.Background(), "dep-picker", "Sales")
	assert.Nil(t, fig)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKey(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	r := NewRedis(client, time.Minute, "42")
	assert.Equal(t, "hr-dashboard:figure:42:dep-picker:Sales", r.key("dep-picker", "Sales"))
	assert.NotEqual(t, r.key("dep-picker", "Sales"), r.key("dep-picker1", "Sales"))
}

type memoryKV struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryKV) Get(_ context.Context, key string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryKV) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.values[key] = string(value.([]byte))
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisRoundTrip(t *testing.T) {
	store := newMemoryKV()
	r := &Redis{client: store, ttl: 5 * time.Minute, version: "7"}
	ctx := context.Background()

	_, err := r.Get(ctx, "dep-picker", "Sales")
	assert.ErrorIs(t, err, ErrMiss)

	want := chart.Histogram("Age Distribution in Departments", []float64{25, 31})
	require.NoError(t, r.Set(ctx, "dep-picker", "Sales", want))
	assert.Equal(t, 5*time.Minute, store.ttls["hr-dashboard:figure:7:dep-picker:Sales"])

	got, err := r.Get(ctx, "dep-picker", "Sales")
	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "histogram", got.Data[0].Type)
	assert.Equal(t, want.Layout.Title.Text, got.Layout.Title.Text)
	assert.Equal(t, []interface{}{25.0, 31.0}, got.Data[0].X)

	// 其他版本的键读不到
	other := &Redis{client: store, ttl: time.Minute, version: "8"}
	_, err = other.Get(ctx, "dep-picker", "Sales")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisErrors(t *testing.T) {
	store := newMemoryKV()
	store.err = errors.New("connection refused")
	r := &Redis{client: store, ttl: time.Minute, version: "1"}
	ctx := context.Background()

	_, err := r.Get(ctx, "dep-picker", "Sales")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)

	assert.Error(t, r.Set(ctx, "dep-picker", "Sales", chart.Histogram("Age", nil)))

	store.err = nil
	store.values["hr-dashboard:figure:1:dep-picker:Sales"] = "{not json"
	_, err = r.Get(ctx, "dep-picker", "Sales")
	assert.Error(t, err)
}
