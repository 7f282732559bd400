package idgen

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNextFormat(t *testing.T) {
	gen := NewTrackingNumberGenerator("CD", 7)
	got := gen.Next()

	if len(got) != 17 {
		t.Fatalf("tracking number %q length = %d, want 17", got, len(got))
	}
	if !strings.HasPrefix(got, "CD"+time.Now().Format("20060102")+"07") {
		t.Errorf("tracking number %q does not match prefix+date+machine layout", got)
	}
}

func TestNextUniqueWithinDay(t *testing.T) {
	gen := NewTrackingNumberGenerator("CD", 1)

	seen := make(map[string]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := gen.Next()
				mu.Lock()
				if seen[n] {
					t.Errorf("duplicate tracking number: %s", n)
				}
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}

func TestInvalidMachineIDFallsBack(t *testing.T) {
	gen := NewTrackingNumberGenerator("CD", 500)
	got := gen.Next()
	if got[10:12] != "00" {
		t.Errorf("machine ID segment = %q, want fallback 00", got[10:12])
	}
}
