package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. Every statement
// is idempotent so the bootstrap can run on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedServices(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		full_name TEXT NOT NULL,
		phone VARCHAR(20),
		avatar_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id UUID NOT NULL REFERENCES users(id),
		role_id UUID NOT NULL REFERENCES roles(id),
		PRIMARY KEY (user_id, role_id)
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS hostels (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		landlord_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT,
		address TEXT NOT NULL,
		ward TEXT,
		city TEXT,
		number_rooms INT NOT NULL DEFAULT 0,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		hostel_id UUID NOT NULL REFERENCES hostels(id),
		name TEXT NOT NULL,
		floor INT DEFAULT 0,
		area NUMERIC(8,2) DEFAULT 0,
		max_occupants INT NOT NULL DEFAULT 1,
		monthly_rent NUMERIC(14,2) NOT NULL,
		is_available BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS tenants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		full_name TEXT NOT NULL,
		phone VARCHAR(20) NOT NULL,
		email TEXT,
		identity_card VARCHAR(20),
		date_of_birth DATE,
		permanent_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS room_tenancies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		tenant_id UUID NOT NULL REFERENCES tenants(id),
		room_id UUID NOT NULL REFERENCES rooms(id),
		move_in_date DATE NOT NULL,
		move_out_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		charging_method VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS hostel_services (
		hostel_id UUID NOT NULL REFERENCES hostels(id),
		service_id UUID NOT NULL REFERENCES services(id),
		PRIMARY KEY (hostel_id, service_id)
	)`,

	`CREATE TABLE IF NOT EXISTS service_costs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		hostel_id UUID NOT NULL REFERENCES hostels(id),
		service_id UUID NOT NULL REFERENCES services(id),
		unit_cost NUMERIC(14,2) NOT NULL,
		unit VARCHAR(20),
		effective_from DATE NOT NULL,
		effective_to DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_service_costs_lookup
		ON service_costs (hostel_id, service_id, effective_from)`,

	`CREATE TABLE IF NOT EXISTS meter_readings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id UUID NOT NULL REFERENCES rooms(id),
		service_id UUID NOT NULL REFERENCES services(id),
		reading DOUBLE PRECISION NOT NULL,
		billing_month INT NOT NULL,
		billing_year INT NOT NULL,
		is_billed BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ,
		UNIQUE (room_id, service_id, billing_month, billing_year)
	)`,

	// The unique index is the arbiter for concurrent generation attempts:
	// the second insert for the same (room, month, year) fails instead of
	// racing in a duplicate.
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id UUID NOT NULL REFERENCES rooms(id),
		billing_month INT NOT NULL,
		billing_year INT NOT NULL,
		total_amount NUMERIC(14,2) NOT NULL,
		amount_paid NUMERIC(14,2) NOT NULL DEFAULT 0,
		is_paid BOOLEAN NOT NULL DEFAULT false,
		transfer_method VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (room_id, billing_month, billing_year)
	)`,

	`CREATE TABLE IF NOT EXISTS invoice_details (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		service_id UUID REFERENCES services(id),
		description TEXT,
		unit_cost NUMERIC(14,2) NOT NULL,
		actual_cost NUMERIC(14,2) NOT NULL,
		previous_reading DOUBLE PRECISION NOT NULL DEFAULT 0,
		current_reading DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_rent_room BOOLEAN NOT NULL DEFAULT false,
		billing_date DATE NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS wallets (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		balance NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		wallet_id UUID NOT NULL REFERENCES wallets(id),
		order_code TEXT UNIQUE,
		type VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		amount NUMERIC(14,2) NOT NULL,
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS user_memberships (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id),
		plan VARCHAR(20) NOT NULL,
		posts_left INT NOT NULL DEFAULT 0,
		push_tops_left INT NOT NULL DEFAULT 0,
		start_date TIMESTAMPTZ NOT NULL,
		expiry_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS posts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		landlord_id UUID NOT NULL REFERENCES users(id),
		hostel_id UUID NOT NULL REFERENCES hostels(id),
		room_id UUID REFERENCES rooms(id),
		title TEXT NOT NULL,
		description TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		pushed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS post_images (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func seedRoles(db *sql.DB) error {
	query := `INSERT INTO roles (name) VALUES ('admin'), ('landlord'), ('tenant')
			  ON CONFLICT (name) DO NOTHING`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to seed roles: %v", err)
		return err
	}
	return nil
}

func seedServices(db *sql.DB) error {
	query := `INSERT INTO services (name, charging_method)
			  SELECT v.name, v.method
			  FROM (VALUES
				('Electricity', 'per_unit'),
				('Water', 'per_unit'),
				('Garbage', 'per_person'),
				('Internet', 'flat')
			  ) AS v(name, method)
			  WHERE NOT EXISTS (SELECT 1 FROM services s WHERE s.name = v.name)`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to seed services: %v", err)
		return err
	}
	return nil
}
