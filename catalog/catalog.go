package catalog

import (
	"errors"
	"sort"
)

// Product is a catalog entry. Prices here are the trusted source the
// checkout flow validates client-submitted unit prices against.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	OldPrice    float64 `json:"oldPrice"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

var ErrProductNotFound = errors.New("product not found")

// Catalog is a read-only in-process product table.
type Catalog struct {
	products map[string]Product
}

// New returns a catalog seeded with the store's product line.
func New() *Catalog {
	return &Catalog{products: defaultProducts()}
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, error) {
	p, ok := c.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns all products ordered by id.
func (c *Catalog) List() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func defaultProducts() map[string]Product {
	products := []Product{
		{
			ID:          "1",
			Name:        "VF Desodorante Colônia 75 ml",
			Price:       87.00,
			OldPrice:    329.00,
			Image:       "/product/p1.jpeg",
			Description: "A fragrância que entrega a sua melhor versão sem esforço.",
			Rating:      4.21,
			Reviews:     457,
		},
		{
			ID:          "2",
			Name:        "Heaven Desodorante Colônia 100ml",
			Price:       87.00,
			OldPrice:    329.00,
			Image:       "/product/p2.jpeg",
			Description: "A fragrância que faz você se sentir pura, leve e absolutamente encantadora.",
			Rating:      4.71,
			Reviews:     870,
		},
		{
			ID:          "3",
			Name:        "VF Bloom Desodorante Colônia 75 ml",
			Price:       87.00,
			OldPrice:    329.00,
			Image:       "/product/p3.jpeg",
			Description: "O perfume que floresce na sua pele.",
			Rating:      4.93,
			Reviews:     1123,
		},
		{
			ID:          "4",
			Name:        "Celebrate Life Desodorante Colônia 100ml",
			Price:       89.90,
			OldPrice:    339.00,
			Image:       "/product/p4.jpeg",
			Description: "O aroma que celebra quem você é.",
			Rating:      4.73,
			Reviews:     3441,
		},
		{
			ID:          "5",
			Name:        "Liberté Desodorante Colônia 100ml",
			Price:       89.90,
			OldPrice:    329.00,
			Image:       "/product/p5.jpeg",
			Description: "Sua liberdade tem um cheiro… e ele é inesquecível.",
			Rating:      4.99,
			Reviews:     4218,
		},
		{
			ID:          "6",
			Name:        "Body Cream Infinity Desodorante Hidratante 200ml",
			Price:       34.90,
			OldPrice:    107.00,
			Image:       "/product/p6.jpeg",
			Description: "Pele macia, perfumada e simplesmente inesquecível.",
			Rating:      4.99,
			Reviews:     3221,
		},
		{
			ID:          "7",
			Name:        "Body Cream One Touch Desodorante Hidratante 200ml",
			Price:       34.90,
			OldPrice:    107.00,
			Image:       "/product/bdot.jpeg",
			Description: "Um toque e você se apaixona pelo próprio cheiro.",
			Rating:      4.60,
			Reviews:     1651,
		},
		{
			ID:          "8",
			Name:        "Body Cream Celebrate Life Desodorante Hidratante 200ml",
			Price:       34.90,
			OldPrice:    107.00,
			Image:       "/product/bdc.jpeg",
			Description: "A energia que sua pele sente. A vibe que você espalha.",
			Rating:      4.80,
			Reviews:     2871,
		},
	}

	m := make(map[string]Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}
