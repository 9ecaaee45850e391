// internal/core/domain/item.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind discriminates the fixed set of item variants. The values double
// as the "type" tag in persisted records, so they are part of the file
// format and must not change.
type ItemKind string

// Variant discriminators
const (
	KindGadget  ItemKind = "Gadget"
	KindFood    ItemKind = "Food"
	KindApparel ItemKind = "Apparel"
)

// ExpiryLayout is the calendar-date form used for Food expiry dates.
const ExpiryLayout = "2006-01-02"

// Item is the shared contract of all inventory item variants. Stock is
// mutated only through Sell and Replenish; both enforce the stock >= 0
// invariant and report success, never partial changes.
type Item interface {
	ID() int
	Name() string
	Price() decimal.Decimal
	Stock() int
	Kind() ItemKind

	// Sell decrements stock by quantity iff 0 < quantity <= stock.
	Sell(quantity int) bool
	// Replenish increments stock by quantity iff quantity > 0.
	Replenish(quantity int) bool
	// TotalValue returns price * stock.
	TotalValue() decimal.Decimal
	// Details renders the variant-specific fields for display. The time
	// argument is the caller's notion of "now"; only Food uses it, to
	// append an expired marker.
	Details(at time.Time) string
	// Record converts the item to its tagged wire record.
	Record() Record
}

// itemCore holds the fields common to every variant.
type itemCore struct {
	id    int
	name  string
	price decimal.Decimal
	stock int
}

func (c *itemCore) ID() int                { return c.id }
func (c *itemCore) Name() string           { return c.name }
func (c *itemCore) Price() decimal.Decimal { return c.price }
func (c *itemCore) Stock() int             { return c.stock }

func (c *itemCore) Sell(quantity int) bool {
	if quantity <= 0 || quantity > c.stock {
		return false
	}
	c.stock -= quantity
	return true
}

func (c *itemCore) Replenish(quantity int) bool {
	if quantity <= 0 {
		return false
	}
	c.stock += quantity
	return true
}

func (c *itemCore) TotalValue() decimal.Decimal {
	return c.price.Mul(decimal.NewFromInt(int64(c.stock)))
}

func (c *itemCore) record(kind ItemKind) Record {
	return Record{
		Type:  kind,
		ID:    c.id,
		Name:  c.name,
		Price: c.price.InexactFloat64(),
		Stock: c.stock,
	}
}

// Gadget is an electronics item with a warranty period and a brand.
type Gadget struct {
	itemCore
	warranty int
	brand    string
}

// NewGadget creates a fully-formed electronics item.
func NewGadget(id int, name string, price decimal.Decimal, stock, warrantyYears int, brand string) *Gadget {
	return &Gadget{
		itemCore: itemCore{id: id, name: name, price: price, stock: stock},
		warranty: warrantyYears,
		brand:    brand,
	}
}

func (g *Gadget) Kind() ItemKind { return KindGadget }
func (g *Gadget) Warranty() int  { return g.warranty }
func (g *Gadget) Brand() string  { return g.brand }

func (g *Gadget) Details(_ time.Time) string {
	return fmt.Sprintf("Brand: %s, Warranty: %d yrs", g.brand, g.warranty)
}

func (g *Gadget) Record() Record {
	rec := g.record(KindGadget)
	rec.Warranty = &g.warranty
	rec.Brand = &g.brand
	return rec
}

// Food is a perishable item with an ISO expiry date.
type Food struct {
	itemCore
	expiry string
}

// NewFood creates a fully-formed perishable item. The expiry date is kept
// verbatim in YYYY-MM-DD form; it is parsed on every expiry check, never
// pre-computed.
func NewFood(id int, name string, price decimal.Decimal, stock int, expiry string) *Food {
	return &Food{
		itemCore: itemCore{id: id, name: name, price: price, stock: stock},
		expiry:   expiry,
	}
}

func (f *Food) Kind() ItemKind { return KindFood }
func (f *Food) Expiry() string { return f.expiry }

// IsExpired reports whether the calendar date of at is strictly after the
// expiry date. An unparseable expiry date never counts as expired.
func (f *Food) IsExpired(at time.Time) bool {
	exp, err := time.ParseInLocation(ExpiryLayout, f.expiry, time.UTC)
	if err != nil {
		return false
	}
	y, m, d := at.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return today.After(exp)
}

func (f *Food) Details(at time.Time) string {
	status := ""
	if f.IsExpired(at) {
		status = " (Expired)"
	}
	return fmt.Sprintf("Expiry: %s%s", f.expiry, status)
}

func (f *Food) Record() Record {
	rec := f.record(KindFood)
	rec.Expiry = &f.expiry
	return rec
}

// Apparel is a clothing item with a size and a fabric.
type Apparel struct {
	itemCore
	size   string
	fabric string
}

// NewApparel creates a fully-formed clothing item.
func NewApparel(id int, name string, price decimal.Decimal, stock int, size, fabric string) *Apparel {
	return &Apparel{
		itemCore: itemCore{id: id, name: name, price: price, stock: stock},
		size:     size,
		fabric:   fabric,
	}
}

func (a *Apparel) Kind() ItemKind { return KindApparel }
func (a *Apparel) Size() string   { return a.size }
func (a *Apparel) Fabric() string { return a.fabric }

func (a *Apparel) Details(_ time.Time) string {
	return fmt.Sprintf("Size: %s, Fabric: %s", a.size, a.fabric)
}

func (a *Apparel) Record() Record {
	rec := a.record(KindApparel)
	rec.Size = &a.size
	rec.Fabric = &a.fabric
	return rec
}

// Record is the tagged wire form of an item. The field names and the
// discriminator values are the compatibility contract with existing saved
// files. Variant payload fields are pointers so that each variant writes
// exactly its own keys, including zero values.
type Record struct {
	Type  ItemKind `json:"type"`
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Stock int      `json:"stock"`

	// Gadget only
	Warranty *int    `json:"warranty,omitempty"`
	Brand    *string `json:"brand,omitempty"`

	// Food only
	Expiry *string `json:"expiry,omitempty"`

	// Apparel only
	Size   *string `json:"size,omitempty"`
	Fabric *string `json:"fabric,omitempty"`
}

// FromRecord reconstructs an item from its tagged record. An unrecognized
// discriminator yields UnknownKindError; callers decide whether that is a
// skip or a failure. Missing variant fields decode as zero values.
func FromRecord(rec Record) (Item, error) {
	price := decimal.NewFromFloat(rec.Price)
	switch rec.Type {
	case KindGadget:
		return NewGadget(rec.ID, rec.Name, price, rec.Stock, intOrZero(rec.Warranty), strOrEmpty(rec.Brand)), nil
	case KindFood:
		return NewFood(rec.ID, rec.Name, price, rec.Stock, strOrEmpty(rec.Expiry)), nil
	case KindApparel:
		return NewApparel(rec.ID, rec.Name, price, rec.Stock, strOrEmpty(rec.Size), strOrEmpty(rec.Fabric)), nil
	default:
		return nil, &UnknownKindError{Kind: rec.Type}
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
