package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gfdmit/blogdesk/config"
	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/lib/pq"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type postgresRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*postgresRepository)(nil)

func New(conf config.Postgres) (*postgresRepository, error) {
	url := fmt.Sprintf(
		"postgresql://%v:%v@%v:%v/%v?sslmode=disable", conf.User, conf.Pass, conf.Host, conf.Port, conf.DB)

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %v", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres.WithInstance: %v", err)
	}
	migrations := fmt.Sprintf("file://%v", conf.Migrations)
	m, err := migrate.NewWithDatabaseInstance(migrations, conf.DB, driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithDatabaseInstance: %v", err)
	}
	log.Println("[MIGRATIONS] applying migrations...")
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("[MIGRATIONS] nothing to migrate")
		} else {
			return nil, fmt.Errorf("error when migrating: %v", err)
		}
	} else {
		log.Println("[MIGRATIONS] migrated successfully!")
	}

	return &postgresRepository{db: db}, nil
}

// wrapNotFound converts the driver's empty-result error into the
// repository sentinel so callers never see sql.ErrNoRows.
func wrapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func wrapDuplicate(err error) error {
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

// affected enforces the delete/update contract: zero rows touched means the
// target row was missing.
func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
