package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestLayoutKey(t *testing.T) {
	type opts struct {
		Distance float64 `json:"distance"`
		Secret   int     `json:"-"`
	}
	base := LayoutKey("doc", LayoutKeyOpts{Engine: "force", Options: opts{Distance: 50}})

	tests := []struct {
		name string
		key  string
		same bool
	}{
		{"identical", LayoutKey("doc", LayoutKeyOpts{Engine: "force", Options: opts{Distance: 50}}), true},
		{"ignored field", LayoutKey("doc", LayoutKeyOpts{Engine: "force", Options: opts{Distance: 50, Secret: 1}}), true},
		{"other document", LayoutKey("doc2", LayoutKeyOpts{Engine: "force", Options: opts{Distance: 50}}), false},
		{"other engine", LayoutKey("doc", LayoutKeyOpts{Engine: "tree", Options: opts{Distance: 50}}), false},
		{"other options", LayoutKey("doc", LayoutKeyOpts{Engine: "force", Options: opts{Distance: 60}}), false},
	}
	for _, tt := range tests {
		if got := tt.key == base; got != tt.same {
			t.Errorf("%s: key equal = %v, want %v", tt.name, got, tt.same)
		}
	}
	if base[:7] != "layout:" {
		t.Errorf("LayoutKey() = %q, want layout: prefix", base)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get(empty) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get() = %q, %v, %v, want v, true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get() after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expired entry file still present: %v", err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = hit %v, err %v, want miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}
	n, err := c.Clear()
	if err != nil || n != 3 {
		t.Errorf("Clear() = %d, %v, want 3, nil", n, err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get() after Clear should miss")
	}
}

func TestFileCacheCanceled(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Set(ctx, "k", nil, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want context.Canceled", err)
	}
}

func TestBackoffConnect(t *testing.T) {
	b := Backoff{Attempts: 3, Delay: time.Millisecond}
	refused := errors.New("connection refused")

	tests := []struct {
		name      string
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{"first ping answers", 0, 1, false},
		{"second ping answers", 1, 2, false},
		{"never answers", 10, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := b.Connect(context.Background(), "redis", func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return refused
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("Connect() pinged %d times, want %d", calls, tt.wantCalls)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Connect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && (!errors.Is(err, ErrUnreachable) || !strings.Contains(err.Error(), "redis")) {
				t.Errorf("Connect() error = %v, want ErrUnreachable naming redis", err)
			}
		})
	}
}

func TestBackoffConnectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := Backoff{Attempts: 3, Delay: time.Hour}
	err := b.Connect(ctx, "mongo", func(context.Context) error {
		return errors.New("connection refused")
	})
	if err != context.Canceled {
		t.Errorf("Connect() error = %v, want context.Canceled", err)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "http://localhost:6379", "")
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("NewRedisCache(http://) error = %v, want ErrInvalidURL", err)
	}
}

func TestRedisCacheLive(t *testing.T) {
	url := os.Getenv("GRAPHLAYOUT_REDIS_URL")
	if url == "" {
		t.Skip("GRAPHLAYOUT_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, "graphlayout-test:")
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestMongoEntry(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := newMongoEntry("k", []byte("v"), time.Minute, now)
	if e.expired(now) || !e.expired(now.Add(2*time.Minute)) {
		t.Errorf("expired() wrong around %v", *e.ExpiresAt)
	}
	if newMongoEntry("k", nil, 0, now).expired(now.Add(1000 * time.Hour)) {
		t.Error("entry without TTL should never expire")
	}

	raw, err := bson.Marshal(newMongoEntry("k", []byte("v"), 0, now))
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal() error = %v", err)
	}
	if doc["_id"] != "k" {
		t.Errorf("_id = %v, want k", doc["_id"])
	}
	if _, ok := doc["expires_at"]; ok {
		t.Error("expires_at should be omitted without TTL")
	}
}

func TestMongoCacheLive(t *testing.T) {
	uri := os.Getenv("GRAPHLAYOUT_MONGO_URI")
	if uri == "" {
		t.Skip("GRAPHLAYOUT_MONGO_URI not set")
	}
	ctx := context.Background()
	c, err := NewMongoCache(ctx, uri, "graphlayout_test", "layouts")
	if err != nil {
		t.Fatalf("NewMongoCache() error = %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	key := "exercise:" + time.Now().Format(time.RFC3339Nano)
	if err := c.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "payload" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get() after Delete should miss")
	}
}
