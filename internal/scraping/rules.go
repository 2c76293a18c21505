// internal/scraping/rules.go
package scraping

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ps-vitor/homefolio/internal/domain"
)

const (
	FieldPrice   = "price"
	FieldName    = "name"
	FieldAddress = "address"
	FieldPhoto   = "photo"

	// SourceText reads the element text; any other Source names an attribute.
	SourceText = "text"
)

// Rule locates one listing field: the first <Tag Attr="Value"> element,
// read from Source.
type Rule struct {
	Field  string `yaml:"field"`
	Tag    string `yaml:"tag"`
	Attr   string `yaml:"attr"`
	Value  string `yaml:"value"`
	Source string `yaml:"source"`
}

// Selector renders the rule as a CSS selector.
func (r Rule) Selector() string {
	return fmt.Sprintf("%s[%s=%q]", r.Tag, r.Attr, r.Value)
}

// DefaultRules match the property page markup the fetcher was written for.
func DefaultRules() []Rule {
	return []Rule{
		{Field: FieldPrice, Tag: "p", Attr: "id", Value: "propertyHeaderPrice", Source: SourceText},
		{Field: FieldName, Tag: "h1", Attr: "itemprop", Value: "name", Source: SourceText},
		{Field: FieldAddress, Tag: "meta", Attr: "itemprop", Value: "streetAddress", Source: "content"},
		{Field: FieldPhoto, Tag: "meta", Attr: "name", Value: "twitter:image:src", Source: "content"},
	}
}

// ValidateRules checks that every listing field has exactly one well-formed rule.
func ValidateRules(rules []Rule) error {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		switch r.Field {
		case FieldPrice, FieldName, FieldAddress, FieldPhoto:
		default:
			return fmt.Errorf("rule: unknown field %q", r.Field)
		}
		if seen[r.Field] {
			return fmt.Errorf("rule: duplicate field %q", r.Field)
		}
		if r.Tag == "" || r.Attr == "" || r.Source == "" {
			return fmt.Errorf("rule %q: tag, attr and source are required", r.Field)
		}
		seen[r.Field] = true
	}
	for _, f := range []string{FieldPrice, FieldName, FieldAddress, FieldPhoto} {
		if !seen[f] {
			return fmt.Errorf("rule: missing field %q", f)
		}
	}
	return nil
}

var priceCleaner = strings.NewReplacer(",", "", "£", "", "Â", "")

var errNoDigits = errors.New("empty price")

// ErrInvalidRules reports a rule set that cannot fill every listing field.
var ErrInvalidRules = errors.New("invalid extraction rules")

// NormalizePrice turns "£750,000" (or the mis-encoded "Â£750,000") into 750000.
func NormalizePrice(raw string) (int, error) {
	cleaned := priceCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, errNoDigits
	}
	return strconv.Atoi(cleaned)
}

// Extract applies rules to a parsed page. Any missing element or attribute,
// or an unparseable price, fails the whole extraction.
func Extract(doc *goquery.Selection, rules []Rule) (domain.Listing, error) {
	if err := ValidateRules(rules); err != nil {
		return domain.Listing{}, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	var listing domain.Listing

	for _, r := range rules {
		value, err := lookup(doc, r)
		if err != nil {
			return domain.Listing{}, err
		}

		switch r.Field {
		case FieldPrice:
			price, err := NormalizePrice(value)
			if err != nil {
				return domain.Listing{}, &Error{Kind: KindParse, Field: r.Field, Err: err}
			}
			listing.Price = price
		case FieldName:
			listing.Name = value
		case FieldAddress:
			listing.Address = value
		case FieldPhoto:
			listing.PhotoURL = value
		}
	}

	return listing, nil
}

func lookup(doc *goquery.Selection, r Rule) (string, error) {
	sel := doc.Find(r.Selector()).First()
	if sel.Length() == 0 {
		return "", &Error{Kind: KindMissingField, Field: r.Field}
	}

	if r.Source == SourceText {
		return sel.Text(), nil
	}

	val, ok := sel.Attr(r.Source)
	if !ok {
		return "", &Error{Kind: KindMissingField, Field: r.Field, Err: fmt.Errorf("no %s attribute", r.Source)}
	}
	return val, nil
}
