package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisCache(t *testing.T) {
	url := os.Getenv("BESTFIRST_REDIS_URL")
	if url == "" {
		t.Skip("BESTFIRST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer c.Close()

	key := "bestfirst:test:" + Hash([]byte(t.Name()))
	if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get() after Delete should miss")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not a url"); err == nil {
		t.Error("NewRedisCache(bad url) should fail")
	}
}
