package main

import (
	"gorm.io/gen"

	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/persistence/postgres"
)

// Generates typed query helpers for the PostgreSQL models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(postgres.Models()...)

	g.Execute()
}
