// seed_categories inserta categorías de prueba con datos aleatorios en PostgreSQL.
//
// Uso: go run ./cmd/seed_categories [cantidad]
// Por defecto inserta 50. Usa la misma configuración que la API (DATABASE_URL, DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jhoicas/catalog-api/internal/domain/entity/categoryfake"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-api/pkg/config"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

func main() {
	count := 50
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "cantidad inválida: %q\n", os.Args[1])
			os.Exit(1)
		}
		count = n
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// created_at escalonado para que el orden por defecto sea estable.
	now := time.Now()
	categories := categoryfake.TheCategories(count).
		WithCreatedAt(categoryfake.Func(func(i int) time.Time { return now.Add(time.Duration(i) * time.Millisecond) })).
		BuildMany()

	err = postgres.NewTxRunner(pool).Run(ctx, func(q postgres.Querier, repo repository.CategoryRepository) error {
		if err := postgres.EnsureSchema(ctx, q); err != nil {
			return err
		}
		return repo.BulkSave(ctx, categories)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("insertar categorías")
	}
	log.Info().Int("count", len(categories)).Msg("categorías insertadas")
}
