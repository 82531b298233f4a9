package domain

// Collection discriminates which catalog collection a listing or cart line
// belongs to. Listing ids are unique only within a collection, so the
// (Collection, ID) pair is the real key.
type Collection string

const (
	CollectionProperty   Collection = "property"
	CollectionElectronic Collection = "electronic"
	CollectionVehicle    Collection = "vehicle"
)

// ParseCollection maps a wire tag to a known collection.
func ParseCollection(tag string) (Collection, bool) {
	switch Collection(tag) {
	case CollectionProperty, CollectionElectronic, CollectionVehicle:
		return Collection(tag), true
	}
	return "", false
}

// Listing is an immutable catalog entry. Prices are whole currency units per
// rental month; the sample data carries no fractional amounts.
//
// The classification lives in two wire fields: property listings carry it as
// "type" (Apartment, Villa) while electronics and vehicles carry it as
// "category" (Laptop, Bike). Kind reads whichever is set.
type Listing struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       int64    `json:"price"`
	Image       string   `json:"image"`
	Type        string   `json:"type,omitempty"`
	Category    string   `json:"category,omitempty"`
	Featured    bool     `json:"isFeatured,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Bathrooms   int      `json:"bathrooms,omitempty"`
	Area        int      `json:"area,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Specs       []string `json:"specs,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
}

// Kind returns the listing's classification regardless of which wire field
// carries it.
func (l Listing) Kind() string {
	if l.Type != "" {
		return l.Type
	}
	return l.Category
}

// SearchResults groups matches by collection, mirroring the search endpoint's
// response shape.
type SearchResults struct {
	Properties  []Listing `json:"properties"`
	Electronics []Listing `json:"electronics"`
	Vehicles    []Listing `json:"vehicles"`
}
