// internal/adapters/in/http/handlers/dto.go
package handlers

import (
	"time"

	cartdom "tiendapos/internal/domain/cart"
	categorydom "tiendapos/internal/domain/category"
	productdom "tiendapos/internal/domain/product"
	profiledom "tiendapos/internal/domain/profile"
	saledom "tiendapos/internal/domain/sale"
)

// ----------------------------------------
// Catalog
// ----------------------------------------

type productDTO struct {
	ID         string    `json:"id"`
	SKU        *string   `json:"sku"`
	Name       string    `json:"name"`
	SalePrice  int       `json:"salePrice"`
	Stock      int       `json:"stock"`
	CategoryID *string   `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toProductDTO(p productdom.Product) productDTO {
	return productDTO{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		SalePrice:  p.SalePrice,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
	}
}

func toProductDTOs(items []productdom.Product) []productDTO {
	out := make([]productDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toProductDTO(p))
	}
	return out
}

type categoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCategoryDTO(c categorydom.Category) categoryDTO {
	return categoryDTO{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// ----------------------------------------
// Cart
// ----------------------------------------

type cartLineDTO struct {
	ProductID string `json:"productId"`
	SKU       string `json:"sku,omitempty"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Qty       int    `json:"qty"`
}

type cartDTO struct {
	Lines     []cartLineDTO `json:"lines"`
	Subtotal  int           `json:"subtotal"`
	Tax       int           `json:"tax"`
	Total     int           `json:"total"`
	ItemCount int           `json:"itemCount"`
}

func toCartDTO(c *cartdom.Cart) cartDTO {
	lines := make([]cartLineDTO, 0)
	for _, ln := range c.Lines() {
		lines = append(lines, cartLineDTO{
			ProductID: ln.Product.ID,
			SKU:       ln.Product.SKU,
			Name:      ln.Product.Name,
			UnitPrice: ln.Product.UnitPrice,
			Qty:       ln.Qty,
		})
	}
	return cartDTO{
		Lines:     lines,
		Subtotal:  c.Subtotal(),
		Tax:       c.Tax(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

// ----------------------------------------
// Sales
// ----------------------------------------

type saleLineDTO struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	ProductSKU  *string `json:"productSku,omitempty"`
	Qty         int     `json:"qty"`
	UnitPrice   int     `json:"unitPrice"`
}

type saleDTO struct {
	ID        string        `json:"id"`
	Total     int           `json:"total"`
	Method    string        `json:"paymentMethod"`
	CreatedAt time.Time     `json:"createdAt"`
	Lines     []saleLineDTO `json:"lines"`
}

func toSaleDTO(s saledom.Sale) saleDTO {
	lines := make([]saleLineDTO, 0, len(s.Lines))
	for _, ln := range s.Lines {
		lines = append(lines, saleLineDTO{
			ID:          ln.ID,
			ProductID:   ln.ProductID,
			ProductName: ln.ProductName,
			ProductSKU:  ln.ProductSKU,
			Qty:         ln.Qty,
			UnitPrice:   ln.UnitPrice,
		})
	}
	return saleDTO{
		ID:        s.ID,
		Total:     s.Total,
		Method:    string(s.Method),
		CreatedAt: s.CreatedAt,
		Lines:     lines,
	}
}

func toSaleDTOs(items []saledom.Sale) []saleDTO {
	out := make([]saleDTO, 0, len(items))
	for _, s := range items {
		out = append(out, toSaleDTO(s))
	}
	return out
}

// ----------------------------------------
// Users
// ----------------------------------------

type profileDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProfileDTO(p profiledom.Profile) profileDTO {
	return profileDTO{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}
