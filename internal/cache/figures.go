package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
)

const keyPrefix = "hr-dashboard:figure"

// FigureCache 缓存下拉框回调生成的图表。
// 表在启动后不会变化，所以同一个 (控件, 取值) 的结果可以安全复用。
type FigureCache interface {
	Get(ctx context.Context, control, value string) (*chart.Figure, error)
	Set(ctx context.Context, control, value string, fig chart.Figure) error
}

// ErrMiss 表示缓存中没有对应的图表
var ErrMiss = errors.New("缓存未命中")

type Noop struct{}

func (Noop) Get(context.Context, string, string) (*chart.Figure, error) {
	return nil, ErrMiss
}

func (Noop) Set(context.Context, string, string, chart.Figure) error {
	return nil
}

// kv 是 Redis 用到的那部分命令，*redis.Client 满足它
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis 的键带有版本号，每次启动的数据集可能不同，旧版本的缓存不会被读到
type Redis struct {
	client  kv
	ttl     time.Duration
	version string
}

func NewRedis(client *redis.Client, ttl time.Duration, version string) *Redis {
	return &Redis{client: client, ttl: ttl, version: version}
}

func (r *Redis) key(control, value string) string {
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, r.version, control, value)
}

func (r *Redis) Get(ctx context.Context, control, value string) (*chart.Figure, error) {
	data, err := r.client.Get(ctx, r.key(control, value)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}

	fig := &chart.Figure{}
	if err := json.Unmarshal(data, fig); err != nil {
		return nil, err
	}
	return fig, nil
}

func (r *Redis) Set(ctx context.Context, control, value string, fig chart.Figure) error {
	data, err := json.Marshal(fig)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(control, value), data, r.ttl).Err()
}
