package schema

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username)
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		PRIMARY KEY (id),
		KEY ix_notes_user_created (user_id, created_at),
		CONSTRAINT fk_notes_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS notes`,
	`DROP TABLE IF EXISTS users`,
}
