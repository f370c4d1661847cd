package analyzer

import (
	"strings"
	"testing"
)

func TestCacheGetPut(t *testing.T) {
	c := NewCache()

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("Get on empty cache returned a value")
	}

	c.Put("k", SearchResult{RelevanceScore: 0.5})
	val, ok := c.Get("k")
	if !ok {
		t.Fatalf("Get after Put missed")
	}
	if r, ok := val.(SearchResult); !ok || r.RelevanceScore != 0.5 {
		t.Errorf("cached value = %#v", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	// Last write wins.
	c.Put("k", SearchResult{RelevanceScore: 0.9})
	val, _ = c.Get("k")
	if r := val.(SearchResult); r.RelevanceScore != 0.9 {
		t.Errorf("overwrite did not take: %v", r.RelevanceScore)
	}
	if c.Len() != 1 {
		t.Errorf("Len after overwrite = %d, want 1", c.Len())
	}
}

func TestCacheKeyDerivation(t *testing.T) {
	short := "some document text"

	if got, want := cacheKey(KindSummary, short), cacheKey(KindSummary, short); got != want {
		t.Fatalf("cache keys for identical input differ: %q vs %q", got, want)
	}
	if !strings.HasPrefix(cacheKey(KindSummary, short), "summary_") {
		t.Errorf("key missing kind prefix: %q", cacheKey(KindSummary, short))
	}
	if cacheKey(KindSummary, short) == cacheKey(KindStructure, short) {
		t.Errorf("different kinds produced the same key")
	}

	// Only the first 1000 characters participate in the fingerprint.
	prefix := strings.Repeat("p", 1000)
	if cacheKey(KindSummary, prefix+"one") != cacheKey(KindSummary, prefix+"two") {
		t.Errorf("inputs sharing a 1000-char prefix should collide")
	}
	if cacheKey(KindSummary, "a"+prefix) == cacheKey(KindSummary, "b"+prefix) {
		t.Errorf("inputs differing within the first 1000 chars should not collide")
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindComprehensive, KindSearch, KindTracking, KindSummary, KindStructure, KindCompliance} {
		if !k.Valid() {
			t.Errorf("%q not valid", k)
		}
	}
	if Kind("embeddings").Valid() {
		t.Errorf("unknown kind accepted")
	}
}
