package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type fakeCmdable struct {
	values  map[string]string
	counts  map[string]int64
	expired map[string]time.Duration
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{
		values:  map[string]string{},
		counts:  map[string]int64{},
		expired: map[string]time.Duration{},
	}
}

func (f *fakeCmdable) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	f.values[key] = value.(string)
	if ttl > 0 {
		f.expired[key] = ttl
	}
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *goredis.StringCmd {
	cmd := goredis.NewStringCmd(ctx)
	if value, ok := f.values[key]; ok {
		cmd.SetVal(value)
	} else {
		cmd.SetErr(goredis.Nil)
	}
	return cmd
}

func (f *fakeCmdable) Incr(ctx context.Context, key string) *goredis.IntCmd {
	f.counts[key]++
	cmd := goredis.NewIntCmd(ctx)
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCmdable) Expire(ctx context.Context, key string, ttl time.Duration) *goredis.BoolCmd {
	f.expired[key] = ttl
	cmd := goredis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			removed++
		}
	}
	cmd := goredis.NewIntCmd(ctx)
	cmd.SetVal(removed)
	return cmd
}

func TestGetMissingKeyReturnsNotFound(t *testing.T) {
	client := &Client{store: newFakeCmdable()}

	_, err := client.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	client := &Client{store: newFakeCmdable()}
	ctx := context.Background()

	if err := client.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestIncrWithTTLSetsExpiryOnce(t *testing.T) {
	fake := newFakeCmdable()
	client := &Client{store: fake}
	ctx := context.Background()

	count, err := client.IncrWithTTL(ctx, "counter", time.Minute)
	if err != nil || count != 1 {
		t.Fatalf("first incr: count=%d err=%v", count, err)
	}
	if fake.expired["counter"] != time.Minute {
		t.Fatal("expected ttl set on first increment")
	}

	fake.expired["counter"] = 0
	count, err = client.IncrWithTTL(ctx, "counter", time.Minute)
	if err != nil || count != 2 {
		t.Fatalf("second incr: count=%d err=%v", count, err)
	}
	if fake.expired["counter"] != 0 {
		t.Fatal("ttl must only be set on the first increment")
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{store: newFakeCmdable()}

	if key := client.CartSnapshotKey("abc"); key != "luxe:cart:abc" {
		t.Fatalf("unexpected cart key: %q", key)
	}
	if key := client.RateLimitKey("login", "ip", "1.2.3.4"); key != "luxe:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("unexpected rate limit key: %q", key)
	}
}
