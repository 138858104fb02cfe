package handlers

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isForeignKeyConstraintError reports whether the error is a MySQL/MariaDB
// foreign key constraint failure, e.g. a participant referencing a member
// that does not exist. Lets handlers answer with a validation response
// instead of a generic 500.
func isForeignKeyConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
