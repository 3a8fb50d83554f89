package database

import (
	"database/sql"
	"log"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
)

var db *gorm.DB

// submitQueryFunction inserts a price query header and all of its quote
// items inside a single transaction and returns the new header id. It is
// the atomic path of the quote submission workflow; clients fall back to
// two separate inserts when it is absent.
const submitQueryFunction = `
CREATE OR REPLACE FUNCTION submit_price_query(
	p_name text,
	p_email text,
	p_phone text,
	p_company text,
	p_message text,
	p_items jsonb
) RETURNS uuid AS $$
DECLARE
	v_id uuid;
	v_item jsonb;
BEGIN
	INSERT INTO price_queries (id, created_at, updated_at, customer_name, customer_email, customer_phone, customer_company, message, status)
	VALUES (uuid_generate_v4(), now(), now(), p_name, p_email, p_phone, p_company, p_message, 'pending')
	RETURNING id INTO v_id;

	FOR v_item IN SELECT * FROM jsonb_array_elements(p_items) LOOP
		INSERT INTO quote_items (id, created_at, updated_at, query_id, product_id, name, quantity)
		VALUES (uuid_generate_v4(), now(), now(), v_id, (v_item->>'product_id')::uuid, v_item->>'name', (v_item->>'quantity')::int);
	END LOOP;

	RETURN v_id;
END;
$$ LANGUAGE plpgsql;
`

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	if db != nil {
		return db
	}

	if err := ensureDatabase(dsn); err != nil {
		log.Fatalf("failed to ensure database: %v", err)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := conn.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Printf("warning: failed to ensure uuid-ossp extension: %v", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := conn.Exec(submitQueryFunction).Error; err != nil {
		log.Printf("warning: failed to install submit_price_query function: %v", err)
	}

	db = conn
	return db
}

// Migrate runs auto-migrations for every persisted model.
func Migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.AdminUser{},
		&models.Category{},
		&models.Subcategory{},
		&models.Brand{},
		&models.Product{},
		&models.ProductFile{},
		&models.PriceQuery{},
		&models.QuoteItem{},
		&models.GeneralQuery{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
