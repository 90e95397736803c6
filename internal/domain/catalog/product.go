package catalog

// RawRow is one flattened record decoded from the source spreadsheet. A row
// describes one variant, one image and up to three named option values; the
// product-level fields are only populated on the row that owns them.
type RawRow struct {
	Handle      string
	Title       string
	BodyHTML    string
	Vendor      string
	ProductType string
	Tags        string

	Option1Name string
	Option1     string
	Option2Name string
	Option2     string
	Option3Name string
	Option3     string

	// Prices stay verbatim decimal strings, empty when absent.
	Price          string
	CompareAtPrice string

	ImageSrc      string
	ImagePosition int
}

// Variant is one purchasable variation of a product. Option values and prices
// are copied verbatim from the source row.
type Variant struct {
	Price          string `json:"price,omitempty"`
	CompareAtPrice string `json:"compare_at_price,omitempty"`
	Option1        string `json:"option1,omitempty"`
	Option2        string `json:"option2,omitempty"`
	Option3        string `json:"option3,omitempty"`
}

// Image is one product image reference.
type Image struct {
	Src      string `json:"src,omitempty"`
	Position int    `json:"position,omitempty"`
}

// ProductOption is a positional option definition (size, color, ...). Values
// accumulate in row order across a row group; duplicates are preserved.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is the aggregated entity submitted to the external catalog.
// Variants, Images and Options stay nil when no row group data was attached,
// so they are omitted from the request body entirely.
type Product struct {
	Handle      string `json:"-"`
	Title       string `json:"title,omitempty"`
	BodyHTML    string `json:"body_html,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	ProductType string `json:"product_type,omitempty"`
	Tags        string `json:"tags,omitempty"`

	// Options is positional: index 0..2 mirrors option1..3. A slot that never
	// received a value stays nil, holes included.
	Variants []Variant        `json:"variants,omitempty"`
	Images   []Image          `json:"images,omitempty"`
	Options  []*ProductOption `json:"options,omitempty"`
}
