package models

// CartLine is a denormalized snapshot of a product taken when it was added to
// the cart. Later product edits do not propagate; the line lives only as long
// as the browser session. Adding the same product twice yields two lines.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
}

// NewCartLine snapshots a product into a cart line.
func NewCartLine(p *Product) CartLine {
	return CartLine{
		ProductID: p.ID.Hex(),
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Image:     p.Image,
	}
}
