package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/inventario-api/pkg/logger"
)

// Esquema de la aplicación. El mantenimiento de índices es un paso explícito
// de arranque: un índice que no se puede crear deja un warn en el log pero no
// impide levantar el servicio; un error de tabla sí es fatal.
var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		inventory_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		original_price NUMERIC(14,2) NOT NULL CHECK (original_price >= 0),
		price NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		stock BIGINT NOT NULL CHECK (stock >= 0),
		category TEXT NOT NULL,
		supplier_id TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id UUID PRIMARY KEY,
		inventory_id TEXT NOT NULL,
		supplier_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		zip_code TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		product_ids TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		inventory_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		type TEXT NOT NULL,
		quantity BIGINT NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(14,2) NOT NULL CHECK (unit_price >= 0),
		total_amount NUMERIC(14,2) NOT NULL CHECK (total_amount >= 0),
		status TEXT NOT NULL DEFAULT 'PENDING',
		payment_method TEXT NOT NULL DEFAULT 'CASH',
		payment_status TEXT NOT NULL DEFAULT 'PENDING',
		customer_name TEXT NOT NULL DEFAULT '',
		customer_email TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		customer_address TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		reference_number TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY,
		action TEXT NOT NULL,
		item TEXT NOT NULL,
		type TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		inventory_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

var indexStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_product_id ON products (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_inventory ON products (inventory_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_supplier ON products (supplier_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_suppliers_supplier_id ON suppliers (supplier_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_suppliers_email ON suppliers (email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_suppliers_name ON suppliers (name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_transaction_id ON transactions (transaction_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_inventory_product ON transactions (inventory_id, product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_type_status ON transactions (type, status)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_timestamp ON activities (timestamp DESC)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_inventory_id ON users (inventory_id)`,
}

// Migrate crea tablas e índices al arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	for _, stmt := range tableStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear tabla: %w", err)
		}
	}
	for _, stmt := range indexStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Warn().Err(err).Str("stmt", stmt).Msg("no se pudo crear el índice")
		}
	}
	return nil
}
