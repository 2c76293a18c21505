// internal/domain/listing.go
package domain

// Listing is the record extracted from a single property page.
type Listing struct {
	Price    int    `json:"price" yaml:"price"`
	Name     string `json:"name" yaml:"name"`
	Address  string `json:"address" yaml:"address"`
	PhotoURL string `json:"photo_url" yaml:"photo_url"`
}

const (
	FallbackPrice    = 750_000
	FallbackName     = "Pretty home"
	FallbackAddress  = "Richmond, Surrey"
	FallbackPhotoURL = "https://unsplash.com/home.png"
)

// FallbackListing is returned whole whenever a page cannot be scraped.
func FallbackListing() Listing {
	return Listing{
		Price:    FallbackPrice,
		Name:     FallbackName,
		Address:  FallbackAddress,
		PhotoURL: FallbackPhotoURL,
	}
}
