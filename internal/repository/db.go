package repository

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Bootstrap creates the schema if it does not exist yet.
func Bootstrap(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGINT AUTO_INCREMENT PRIMARY KEY,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at    TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			UNIQUE KEY uq_users_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS calculations (
			id                 BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id            BIGINT NOT NULL,
			cost_price         DOUBLE NOT NULL,
			sale_price         DOUBLE NOT NULL,
			commission_percent DOUBLE NOT NULL,
			logistics_cost     DOUBLE NOT NULL,
			tax_percent        DOUBLE NOT NULL,
			quantity           INT NOT NULL,
			revenue            DOUBLE NOT NULL,
			total_cost         DOUBLE NOT NULL,
			profit             DOUBLE NOT NULL,
			profit_per_unit    DOUBLE NOT NULL,
			margin_percent     DOUBLE NOT NULL,
			roi_percent        DOUBLE NOT NULL,
			created_at         TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			KEY idx_calculations_owner (user_id, created_at),
			CONSTRAINT fk_calculations_user FOREIGN KEY (user_id) REFERENCES users (id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
