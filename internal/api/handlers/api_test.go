package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/homefolio/internal/charts"
	"github.com/ps-vitor/homefolio/internal/domain"
	"github.com/ps-vitor/homefolio/internal/scraping"
	"github.com/ps-vitor/homefolio/internal/services"
	"github.com/ps-vitor/homefolio/pkg/logger"
)

const listingPage = `<html><head>
<meta itemprop="streetAddress" content="Richmond, Surrey">
<meta name="twitter:image:src" content="https://example.com/home.png">
</head><body>
<h1 itemprop="name">Pretty home</h1>
<p id="propertyHeaderPrice">£750,000</p>
</body></html>`

const tableJSON = `{"columns":[{"name":"wealth","values":[100,200,300]},{"name":"cash_flow","values":[1,2,3]}]}`

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	svc := services.NewListingService(scraping.NewHTTPFetcher(), logger.Nop())
	svc.SetNoticeWriter(io.Discard)

	api := NewAPIHandler(NewListingHandler(svc), NewChartsHandler(charts.NewRenderer(charts.Options{})))
	r := mux.NewRouter()
	api.RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newRouter(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("health: %d %s", rec.Code, rec.Body.String())
	}
}

func TestListingEndpoints(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	}))
	defer page.Close()
	missing := httptest.NewServer(http.NotFoundHandler())
	defer missing.Close()

	router := newRouter(t)

	rec := do(router, http.MethodGet, "/api/listing?url="+url.QueryEscape(page.URL), "")
	var got domain.Listing
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Price != 750000 || got.PhotoURL != "https://example.com/home.png" {
		t.Errorf("listing = %+v", got)
	}

	rec = do(router, http.MethodGet, "/api/listing?url="+url.QueryEscape(missing.URL), "")
	got = domain.Listing{}
	json.Unmarshal(rec.Body.Bytes(), &got)
	if rec.Code != http.StatusOK || got != domain.FallbackListing() {
		t.Errorf("fallback: %d %+v", rec.Code, got)
	}

	rec = do(router, http.MethodGet, "/api/listing/strict?url="+url.QueryEscape(missing.URL), "")
	if rec.Code != http.StatusBadGateway || !strings.Contains(rec.Body.String(), "http_status") {
		t.Errorf("strict: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(router, http.MethodGet, "/api/listing", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing url: %d", rec.Code)
	}
}

func TestStrictListingMissingField(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p id="propertyHeaderPrice">£1</p></body></html>`))
	}))
	defer page.Close()

	rec := do(newRouter(t), http.MethodGet, "/api/listing/strict?url="+url.QueryEscape(page.URL), "")
	if rec.Code != http.StatusUnprocessableEntity || !strings.Contains(rec.Body.String(), "missing_field") {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestChartEndpoints(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/api/charts/outcomes", "/api/charts/wealth"} {
		rec := do(router, http.MethodPost, path, tableJSON)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: %d %s", path, rec.Code, rec.Body.String())
			continue
		}
		if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
			t.Errorf("%s: content type %q", path, rec.Header().Get("Content-Type"))
		}
	}

	rec := do(router, http.MethodPost, "/api/charts/outcomes.svg?years=2", tableJSON)
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("<svg")) {
		t.Errorf("svg: %d", rec.Code)
	}
}

func TestChartEndpointErrors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name, path, body string
	}{
		{"bad json", "/api/charts/outcomes", "{"},
		{"unknown field", "/api/charts/outcomes", `{"rows":[]}`},
		{"no series", "/api/charts/outcomes", `{"columns":[]}`},
		{"wealth missing column", "/api/charts/wealth", `{"columns":[{"name":"wealth","values":[1,2]}]}`},
		{"svg without years", "/api/charts/outcomes.svg", tableJSON},
		{"svg negative years", "/api/charts/outcomes.svg?years=-1", tableJSON},
		{"svg huge years", "/api/charts/outcomes.svg?years=1000000000", tableJSON},
		{"svg single period", "/api/charts/outcomes.svg?years=0", `{"columns":[{"name":"a","values":[1]}]}`},
	}

	for _, tt := range tests {
		rec := do(router, http.MethodPost, tt.path, tt.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d; want 400 (%s)", tt.name, rec.Code, rec.Body.String())
		}
	}

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/api/charts/outcomes"},
		{http.MethodGet, "/api/charts/wealth"},
		{http.MethodGet, "/api/charts/outcomes.svg"},
		{http.MethodPost, "/api/listing"},
	} {
		if rec := do(router, tt.method, tt.path, ""); rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: got %d; want 405", tt.method, tt.path, rec.Code)
		}
	}

	if rec := do(router, http.MethodGet, "/api/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route: got %d; want 404", rec.Code)
	}
}
