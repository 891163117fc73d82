package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCacheFilename(t *testing.T) {
	name := CacheFilename("https://www.kondis.no/statistikk/maraton-2015")
	if !strings.HasPrefix(name, "www_kondis_no_statistikk_maraton_2015_") {
		t.Errorf("unexpected slug in %q", name)
	}
	if !strings.HasSuffix(name, ".html") {
		t.Errorf("missing extension in %q", name)
	}

	// Stable across calls, distinct per URL.
	if name != CacheFilename("https://www.kondis.no/statistikk/maraton-2015") {
		t.Error("filename not stable")
	}
	if name == CacheFilename("https://www.kondis.no/statistikk/maraton-2016") {
		t.Error("distinct URLs share a filename")
	}

	long := "https://example.org/" + strings.Repeat("a", 200)
	if got := CacheFilename(long); len(got) > 80+1+16+len(".html") {
		t.Errorf("slug not truncated: %d chars", len(got))
	}
}

func TestGetUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "friidrett-stats") {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte("<html>hello</html>"))
	}))
	defer srv.Close()

	c := New(t.TempDir(), false)

	first, fromCache, err := c.Get(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if fromCache {
		t.Error("first Get reported cache hit")
	}

	second, fromCache, err := c.Get(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if !fromCache {
		t.Error("second Get missed cache")
	}
	if string(first) != string(second) {
		t.Errorf("cache returned different bytes: %q vs %q", first, second)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestGetRefreshBypassesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	if _, _, err := New(dir, false).Get(context.Background(), srv.URL); err != nil {
		t.Fatal(err)
	}
	if _, fromCache, err := New(dir, true).Get(context.Background(), srv.URL); err != nil {
		t.Fatal(err)
	} else if fromCache {
		t.Error("refresh client served from cache")
	}
	if hits != 2 {
		t.Errorf("server hit %d times, want 2", hits)
	}
}

func TestGetNotFoundDoesNotRetry(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, _, err := New(t.TempDir(), false).Get(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestDecodeHTMLLatin1(t *testing.T) {
	raw := []byte("Kappgang 10 km, L\xf8p") // ISO-8859-1 ø
	decoded, err := DecodeHTML(raw, "text/html; charset=iso-8859-1")
	if err != nil {
		t.Fatalf("DecodeHTML: %v", err)
	}
	if !strings.Contains(string(decoded), "Løp") {
		t.Errorf("decoded = %q", decoded)
	}
}
