package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Sentencias DDL idempotentes. El estado "pendiente" se admite en el CHECK por
// completitud del esquema aunque ningún flujo lo produce hoy.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('admin', 'vendedor')),
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		stock       INTEGER NOT NULL CHECK (stock >= 0),
		category    TEXT NOT NULL,
		barcode     TEXT UNIQUE,
		active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		tax_id     TEXT NOT NULL DEFAULT '',
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             UUID PRIMARY KEY,
		date           TIMESTAMPTZ NOT NULL,
		total          NUMERIC(10,2) NOT NULL CHECK (total >= 0),
		customer_id    UUID REFERENCES customers(id),
		user_id        UUID NOT NULL REFERENCES users(id),
		status         TEXT NOT NULL CHECK (status IN ('pendiente', 'completada', 'cancelada')),
		payment_method TEXT NOT NULL CHECK (payment_method IN ('efectivo', 'tarjeta', 'transferencia')),
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sale_lines (
		id         UUID PRIMARY KEY,
		sale_id    UUID NOT NULL REFERENCES sales(id),
		product_id UUID NOT NULL REFERENCES products(id),
		quantity   INTEGER NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(10,2) NOT NULL CHECK (unit_price >= 0),
		subtotal   NUMERIC(10,2) NOT NULL CHECK (subtotal >= 0),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_sale ON sale_lines (sale_id)`,
}

// EnsureSchema crea las tablas si no existen y siembra el usuario administrador
// inicial. Es seguro ejecutarla en cada arranque.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, adminEmail, adminPassword string) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return seedAdmin(ctx, pool, adminEmail, adminPassword)
}

// seedAdmin crea el usuario administrador por defecto si no existe ninguno con ese email.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password admin: %w", err)
	}
	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'admin', TRUE, $5, $5)`,
		uuid.New().String(), "Administrador", email, string(hash), now,
	)
	if err != nil {
		return fmt.Errorf("sembrar admin: %w", err)
	}
	return nil
}
