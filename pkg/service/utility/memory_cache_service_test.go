package utility

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestCache(t *testing.T) CacheService {
	t.Helper()
	svc := NewMemoryCacheService()
	t.Cleanup(func() {
		if stopper, ok := svc.(interface{ Stop() }); ok {
			stopper.Stop()
		}
	})
	return svc
}

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	tests := []struct {
		name       string
		key        string
		value      interface{}
		expiration time.Duration
		want       string
	}{
		{"字符串值", "k1", "hello", 0, "hello"},
		{"整数值", "k2", 42, 0, "42"},
		{"带过期时间", "k3", "v", time.Minute, "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, tt.value, tt.expiration); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, err := cache.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("不存在的键返回空字符串", func(t *testing.T) {
		got, err := cache.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "" {
			t.Errorf("Get() = %q, want empty", got)
		}
	})

	t.Run("过期的键读取时被清除", func(t *testing.T) {
		if err := cache.Set(ctx, "ephemeral", "v", time.Millisecond); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		got, err := cache.Get(ctx, "ephemeral")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "" {
			t.Errorf("过期键应返回空字符串，got %q", got)
		}
	})
}

func TestMemoryCacheIncrement(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	for want := int64(1); want <= 3; want++ {
		got, err := cache.Increment(ctx, "counter")
		if err != nil {
			t.Fatalf("Increment() error = %v", err)
		}
		if got != want {
			t.Errorf("Increment() = %d, want %d", got, want)
		}
	}
}

func TestMemoryCacheIncrementConcurrent(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	const goroutines = 20
	const perGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				if _, err := cache.Increment(ctx, "concurrent"); err != nil {
					t.Errorf("Increment() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	got, err := cache.Get(ctx, "concurrent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if want := "1000"; got != want {
		t.Errorf("并发递增后的值 = %q, want %q", got, want)
	}
}

func TestMemoryCacheScan(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	keys := []string{
		"muselink:play:count:1",
		"muselink:play:count:2",
		"muselink:play:visitors:1",
		"other:key",
	}
	for _, k := range keys {
		if err := cache.Set(ctx, k, "1", 0); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	matched, err := cache.Scan(ctx, "muselink:play:count:*")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("Scan() 匹配 %d 个键, want 2: %v", len(matched), matched)
	}
	for _, k := range matched {
		if k != "muselink:play:count:1" && k != "muselink:play:count:2" {
			t.Errorf("意外匹配的键: %q", k)
		}
	}
}

func TestMemoryCacheGetAndDeleteMany(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	if err := cache.Set(ctx, "c:1", 5, 0); err != nil {
		t.Fatal(err)
	}
	if err := cache.Set(ctx, "c:2", 9, 0); err != nil {
		t.Fatal(err)
	}

	results, err := cache.GetAndDeleteMany(ctx, []string{"c:1", "c:2", "c:missing"})
	if err != nil {
		t.Fatalf("GetAndDeleteMany() error = %v", err)
	}
	if results["c:1"] != 5 || results["c:2"] != 9 {
		t.Errorf("results = %v, want c:1=5 c:2=9", results)
	}
	if _, ok := results["c:missing"]; ok {
		t.Error("不存在的键不应出现在结果中")
	}

	// 取走即删除
	got, _ := cache.Get(ctx, "c:1")
	if got != "" {
		t.Errorf("取走后键应被删除，got %q", got)
	}
}

func TestMemoryCacheSAdd(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	added, err := cache.SAdd(ctx, "visitors", "1.2.3.4")
	if err != nil {
		t.Fatalf("SAdd() error = %v", err)
	}
	if added != 1 {
		t.Errorf("首次添加 = %d, want 1", added)
	}

	added, err = cache.SAdd(ctx, "visitors", "1.2.3.4")
	if err != nil {
		t.Fatalf("SAdd() error = %v", err)
	}
	if added != 0 {
		t.Errorf("重复添加 = %d, want 0", added)
	}

	added, err = cache.SAdd(ctx, "visitors", "5.6.7.8", "9.10.11.12")
	if err != nil {
		t.Fatalf("SAdd() error = %v", err)
	}
	if added != 2 {
		t.Errorf("批量添加 = %d, want 2", added)
	}
}

func TestMemoryCacheSAddConcurrent(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	const goroutines = 50

	var wg sync.WaitGroup
	var added int64
	var mu sync.Mutex
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			count, err := cache.SAdd(ctx, "visitors", fmt.Sprintf("10.0.0.%d", n))
			if err != nil {
				t.Errorf("SAdd() error = %v", err)
				return
			}
			mu.Lock()
			added += count
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if added != goroutines {
		t.Errorf("并发添加计入 %d 个新成员, want %d", added, goroutines)
	}

	// 每个成员都必须留在集合里，重复添加返回0
	for i := 0; i < goroutines; i++ {
		count, err := cache.SAdd(ctx, "visitors", fmt.Sprintf("10.0.0.%d", i))
		if err != nil {
			t.Fatalf("SAdd() error = %v", err)
		}
		if count != 0 {
			t.Errorf("成员 10.0.0.%d 在并发写入时丢失", i)
		}
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		pattern string
		want    bool
	}{
		{"完全匹配", "abc", "abc", true},
		{"前缀通配", "muselink:play:count:7", "muselink:play:count:*", true},
		{"前缀不符", "other:count:7", "muselink:play:count:*", false},
		{"后缀通配", "count:7", "*:7", true},
		{"中间通配", "a:b:c", "a:*:c", true},
		{"无通配不相等", "abc", "abd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPattern(tt.s, tt.pattern); got != tt.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.s, tt.pattern, got, tt.want)
			}
		})
	}
}
