package dao

import (
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrForeignKey = errors.New("referenced record does not exist or is still in use")

	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("username, email or cedula already in use")
	ErrTokenNotFound    = errors.New("token not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrUnsupportedOwner = errors.New("entity type does not accept this attachment")
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// classify maps driver specific failures onto the package's sentinel errors
// so callers never need to know which database is behind gorm.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		}
		return err
	}

	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", ErrDuplicate, myErr.Message)
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return fmt.Errorf("%w: %s", ErrForeignKey, myErr.Message)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %s", ErrDuplicate, liteErr.Error())
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %s", ErrForeignKey, liteErr.Error())
		}
	}

	return err
}
