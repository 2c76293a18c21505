package scraping

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ps-vitor/homefolio/internal/domain"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"£750,000", 750000, false},
		{"Â£750,000", 750000, false},
		{"  £1,234,567 \n", 1234567, false},
		{"425000", 425000, false},
		{"POA", 0, true},
		{"£750,000 Guide Price", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := NormalizePrice(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizePrice(%q) error = %v; wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizePrice(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestRuleSelector(t *testing.T) {
	r := Rule{Tag: "meta", Attr: "name", Value: "twitter:image:src"}
	if got, want := r.Selector(), `meta[name="twitter:image:src"]`; got != want {
		t.Errorf("Selector() = %s; want %s", got, want)
	}
}

func TestValidateRules(t *testing.T) {
	if err := ValidateRules(DefaultRules()); err != nil {
		t.Fatalf("default rules should validate: %v", err)
	}

	missing := DefaultRules()[:3]
	if err := ValidateRules(missing); err == nil {
		t.Error("expected error for missing photo rule")
	}

	dup := append(DefaultRules(), DefaultRules()[0])
	if err := ValidateRules(dup); err == nil {
		t.Error("expected error for duplicate rule")
	}

	bad := DefaultRules()
	bad[1].Tag = ""
	if err := ValidateRules(bad); err == nil {
		t.Error("expected error for empty tag")
	}
}

func parse(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc.Selection
}

func TestExtract(t *testing.T) {
	doc := parse(t, fixture(t, "£750,000"))

	got, err := Extract(doc, DefaultRules())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != wantListing {
		t.Errorf("Extract = %+v; want %+v", got, wantListing)
	}
}

func TestExtractMissingField(t *testing.T) {
	html := strings.Replace(fixture(t, "£750,000"), `itemprop="streetAddress"`, `itemprop="locality"`, 1)

	_, err := Extract(parse(t, html), DefaultRules())
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if se.Kind != KindMissingField || se.Field != FieldAddress {
		t.Errorf("got kind %s field %q; want missing_field address", se.Kind, se.Field)
	}
}

func TestExtractMissingAttribute(t *testing.T) {
	html := strings.Replace(fixture(t, "£750,000"), `content="https://example.com/home.png"`, "", 1)

	_, err := Extract(parse(t, html), DefaultRules())
	if KindOf(err) != KindMissingField {
		t.Errorf("KindOf = %s; want missing_field", KindOf(err))
	}
}

func TestExtractBadPrice(t *testing.T) {
	_, err := Extract(parse(t, fixture(t, "Offers over £750,000")), DefaultRules())
	if KindOf(err) != KindParse {
		t.Errorf("KindOf = %s; want parse", KindOf(err))
	}
}

func TestExtractCustomRules(t *testing.T) {
	html := `<html><body>
		<span class="price">£300,000</span>
		<h2 class="title">Flat</h2>
		<div data-address="Kew" data-img="https://example.com/flat.png"></div>
	</body></html>`
	rules := []Rule{
		{Field: FieldPrice, Tag: "span", Attr: "class", Value: "price", Source: SourceText},
		{Field: FieldName, Tag: "h2", Attr: "class", Value: "title", Source: SourceText},
		{Field: FieldAddress, Tag: "div", Attr: "data-address", Value: "Kew", Source: "data-address"},
		{Field: FieldPhoto, Tag: "div", Attr: "data-address", Value: "Kew", Source: "data-img"},
	}

	got, err := Extract(parse(t, html), rules)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Price != 300000 || got.Name != "Flat" || got.Address != "Kew" || got.PhotoURL != "https://example.com/flat.png" {
		t.Errorf("unexpected listing %+v", got)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindNetwork:      "network",
		KindHTTPStatus:   "http_status",
		KindParse:        "parse",
		KindMissingField: "missing_field",
		KindUnknown:      "unknown",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %s; want %s", k, k.String(), want)
		}
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should classify as unknown")
	}
}

func TestExtractRejectsIncompleteRules(t *testing.T) {
	doc := parse(t, fixture(t, "£750,000"))

	for name, rules := range map[string][]Rule{
		"nil":     nil,
		"partial": DefaultRules()[:2],
	} {
		got, err := Extract(doc, rules)
		if !errors.Is(err, ErrInvalidRules) {
			t.Errorf("%s: got %v; want ErrInvalidRules", name, err)
		}
		if got != (domain.Listing{}) {
			t.Errorf("%s: partial listing returned: %+v", name, got)
		}
	}
}
