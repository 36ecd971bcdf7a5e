package config

import "database/sql"

// Table DDL in dependency order. Wallets and ledger entries keep the
// non-negativity invariants at the schema level as well; the booking
// transaction never relies on CHECK alone.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		student_id BIGINT NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role ENUM('user','admin','driver') NOT NULL DEFAULT 'user',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		verified TINYINT(1) NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_email (email),
		UNIQUE KEY uniq_student (student_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS wallets (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		balance BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_user (user_id),
		CONSTRAINT chk_wallet_balance CHECK (balance >= 0),
		CONSTRAINT fk_wallet_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS routes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		start_location VARCHAR(255) NOT NULL,
		end_location VARCHAR(255) NOT NULL,
		fare BIGINT NOT NULL DEFAULT 0,
		CONSTRAINT chk_route_fare CHECK (fare >= 0)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS shuttles (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		number VARCHAR(50) NOT NULL,
		UNIQUE KEY uniq_number (number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS trips (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		route_id BIGINT NOT NULL,
		shuttle_id BIGINT NOT NULL,
		trip_date DATE NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		available_seats INT NOT NULL DEFAULT 0,
		CONSTRAINT chk_trip_seats CHECK (available_seats >= 0),
		CONSTRAINT fk_trip_route FOREIGN KEY (route_id) REFERENCES routes(id),
		CONSTRAINT fk_trip_shuttle FOREIGN KEY (shuttle_id) REFERENCES shuttles(id),
		KEY idx_trip_route_date (route_id, trip_date),
		KEY idx_trip_shuttle_date (shuttle_id, trip_date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		wallet_id BIGINT NOT NULL,
		entry_type VARCHAR(20) NOT NULL,
		amount BIGINT NOT NULL,
		balance_after BIGINT NOT NULL,
		reference CHAR(36) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT chk_ledger_balance CHECK (balance_after >= 0),
		CONSTRAINT fk_ledger_wallet FOREIGN KEY (wallet_id) REFERENCES wallets(id),
		KEY idx_ledger_wallet (wallet_id, id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		code CHAR(36) NOT NULL,
		user_id BIGINT NOT NULL,
		trip_id BIGINT NOT NULL,
		ledger_entry_id BIGINT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_code (code),
		UNIQUE KEY uniq_ledger (ledger_entry_id),
		CONSTRAINT fk_booking_user FOREIGN KEY (user_id) REFERENCES users(id),
		CONSTRAINT fk_booking_trip FOREIGN KEY (trip_id) REFERENCES trips(id),
		CONSTRAINT fk_booking_ledger FOREIGN KEY (ledger_entry_id) REFERENCES ledger_entries(id),
		KEY idx_booking_trip (trip_id),
		KEY idx_booking_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates missing tables at startup.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
