package importer

import (
	"github.com/shopsync/backend/internal/domain/catalog"
)

// Aggregation holds the four per-handle accumulator maps for one ingestion
// run. A fresh Aggregation is built per run and discarded after assembly.
type Aggregation struct {
	products map[string]*catalog.Product
	variants map[string][]catalog.Variant
	images   map[string][]catalog.Image
	options  map[string][]*catalog.ProductOption
}

// Aggregate folds a sequence of raw rows into grouped maps keyed by handle.
func Aggregate(rows []catalog.RawRow) *Aggregation {
	agg := &Aggregation{
		products: make(map[string]*catalog.Product),
		variants: make(map[string][]catalog.Variant),
		images:   make(map[string][]catalog.Image),
		options:  make(map[string][]*catalog.ProductOption),
	}

	for i := range rows {
		row := &rows[i]
		agg.addProduct(row)
		agg.addVariant(row)
		agg.addImage(row)
		agg.addOptions(row)
	}

	return agg
}

// addProduct registers the product-level fields for the row's handle. Only
// title-bearing rows contribute; if several rows of a group carry a title the
// last one processed wins.
func (a *Aggregation) addProduct(row *catalog.RawRow) {
	if row.Title == "" {
		return
	}
	a.products[row.Handle] = &catalog.Product{
		Handle:      row.Handle,
		Title:       row.Title,
		BodyHTML:    row.BodyHTML,
		Vendor:      row.Vendor,
		ProductType: row.ProductType,
		Tags:        row.Tags,
	}
}

// addVariant appends a variant built from the row's option and price fields.
// The handle is registered even when the row carries no option1 value, so
// downstream code can tell "zero variants" apart from "never seen".
func (a *Aggregation) addVariant(row *catalog.RawRow) {
	if _, ok := a.variants[row.Handle]; !ok {
		a.variants[row.Handle] = []catalog.Variant{}
	}

	// useless variant
	if row.Option1 == "" {
		return
	}

	a.variants[row.Handle] = append(a.variants[row.Handle], catalog.Variant{
		Price:          row.Price,
		CompareAtPrice: row.CompareAtPrice,
		Option1:        row.Option1,
		Option2:        row.Option2,
		Option3:        row.Option3,
	})
}

// addImage appends the row's image descriptor unconditionally; image presence
// is row-driven, not value-driven.
func (a *Aggregation) addImage(row *catalog.RawRow) {
	if _, ok := a.images[row.Handle]; !ok {
		a.images[row.Handle] = []catalog.Image{}
	}
	a.images[row.Handle] = append(a.images[row.Handle], catalog.Image{
		Src:      row.ImageSrc,
		Position: row.ImagePosition,
	})
}

// addOptions records the row's three option name/value pairs on the handle's
// positional slots.
func (a *Aggregation) addOptions(row *catalog.RawRow) {
	slots, ok := a.options[row.Handle]
	if !ok {
		slots = []*catalog.ProductOption{}
	}
	slots = setOption(slots, row.Option1Name, row.Option1, 0)
	slots = setOption(slots, row.Option2Name, row.Option2, 1)
	slots = setOption(slots, row.Option3Name, row.Option3, 2)
	a.options[row.Handle] = slots
}

// setOption records one option value on the slot at idx. An empty value never
// creates or extends a slot. The slot keeps whichever name first populated
// it; later rows contribute values only.
func setOption(slots []*catalog.ProductOption, name, value string, idx int) []*catalog.ProductOption {
	if value == "" {
		return slots
	}
	for len(slots) <= idx {
		slots = append(slots, nil)
	}
	if slots[idx] == nil {
		slots[idx] = &catalog.ProductOption{Name: name, Values: []string{value}}
	} else {
		slots[idx].Values = append(slots[idx].Values, value)
	}
	return slots
}

// Assemble attaches the grouped variants, images and options onto their
// products and returns the product map. Handles without a title-bearing row
// never entered the product map, so their fragments are dropped here.
func (a *Aggregation) Assemble() map[string]*catalog.Product {
	for handle, product := range a.products {
		if variants, ok := a.variants[handle]; ok {
			product.Variants = variants
		}
		if images, ok := a.images[handle]; ok {
			product.Images = images
		}
		if options, ok := a.options[handle]; ok {
			product.Options = options
		}
	}
	return a.products
}
