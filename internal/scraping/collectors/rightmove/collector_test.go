package rightmove

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ps-vitor/homefolio/internal/domain"
	"github.com/ps-vitor/homefolio/internal/scraping"
)

func page(t *testing.T, price string) string {
	t.Helper()
	b, err := os.ReadFile("../../testdata/listing.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return strings.Replace(string(b), "{{PRICE}}", price, 1)
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCollectorFetch(t *testing.T) {
	srv := serve(t, http.StatusOK, page(t, "Â£750,000"))
	c := NewCollector("", time.Second, nil)

	want := domain.Listing{Price: 750000, Name: "Pretty home", Address: "Richmond, Surrey", PhotoURL: "https://example.com/home.png"}

	// second call must not be rejected as an already visited URL
	for i := 0; i < 2; i++ {
		got, err := c.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if got != want {
			t.Errorf("fetch %d = %+v; want %+v", i, got, want)
		}
	}
}

func TestCollectorErrorKinds(t *testing.T) {
	notFound := serve(t, http.StatusNotFound, "<html></html>")
	noName := serve(t, http.StatusOK, strings.Replace(page(t, "£750,000"), `itemprop="name"`, "", 1))

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name string
		url  string
		want scraping.Kind
	}{
		{"404", notFound.URL, scraping.KindHTTPStatus},
		{"missing name", noName.URL, scraping.KindMissingField},
		{"connection refused", closedURL, scraping.KindNetwork},
	}

	c := NewCollector("", time.Second, scraping.DefaultRules())
	for _, tt := range tests {
		_, err := c.Fetch(context.Background(), tt.url)
		if got := scraping.KindOf(err); got != tt.want {
			t.Errorf("%s: kind = %s; want %s (%v)", tt.name, got, tt.want, err)
		}
	}
}

func TestCollectorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCollector("", 0, nil).Fetch(ctx, "http://127.0.0.1:1")
	if scraping.KindOf(err) != scraping.KindNetwork {
		t.Errorf("KindOf = %s; want network", scraping.KindOf(err))
	}
}

func TestCollectorSatisfiesFetcher(t *testing.T) {
	var _ scraping.Fetcher = NewCollector("", 0, nil)
}
