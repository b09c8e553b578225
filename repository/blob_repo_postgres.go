package repository

import (
	"database/sql"
)

type PostgresBlobRepo struct {
	DB *sql.DB
}

func NewPostgresBlobRepo(db *sql.DB) *PostgresBlobRepo {
	return &PostgresBlobRepo{DB: db}
}

func (r *PostgresBlobRepo) Get(key string) ([]byte, error) {
	var value []byte
	err := r.DB.QueryRow(`SELECT value FROM blobs WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *PostgresBlobRepo) Put(key string, value []byte) error {
	_, err := r.DB.Exec(`
		INSERT INTO blobs(key, value, updated_at)
		VALUES($1, $2, now())
		ON CONFLICT(key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return err
}
