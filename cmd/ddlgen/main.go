// cmd/ddlgen/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"tiendapos/internal/domain/category"
	"tiendapos/internal/domain/product"
	"tiendapos/internal/domain/profile"
	"tiendapos/internal/domain/sale"
)

func mustWrite(path string, content string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

func main() {
	outDir := filepath.Join("internal", "infra", "database", "migrations")

	// FK dependency order: categories before products, sales before sale_lines.
	mustWrite(filepath.Join(outDir, "init_categories.sql"), category.CategoriesTableDDL)
	fmt.Println("Generated:", filepath.Join(outDir, "init_categories.sql"))

	mustWrite(filepath.Join(outDir, "init_products.sql"), product.ProductsTableDDL)
	fmt.Println("Generated:", filepath.Join(outDir, "init_products.sql"))

	mustWrite(filepath.Join(outDir, "init_sales.sql"), sale.SalesTableDDL)
	fmt.Println("Generated:", filepath.Join(outDir, "init_sales.sql"))

	mustWrite(filepath.Join(outDir, "init_sale_lines.sql"), sale.SaleLinesTableDDL)
	fmt.Println("Generated:", filepath.Join(outDir, "init_sale_lines.sql"))

	mustWrite(filepath.Join(outDir, "init_profiles.sql"), profile.ProfilesTableDDL)
	fmt.Println("Generated:", filepath.Join(outDir, "init_profiles.sql"))
}
