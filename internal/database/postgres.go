package database

import (
	"database/sql"
)

type PgBirdseyeRepository struct {
	conn *sql.DB
}

func NewPgBirdseyeRepository(dsn string) (*PgBirdseyeRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PgBirdseyeRepository{conn: db}, nil
}

func (db *PgBirdseyeRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgBirdseyeRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
