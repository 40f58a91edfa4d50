package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// IsDuplicateKey reports whether err is a MySQL unique index violation
// (ER_DUP_ENTRY). Services use it to turn racy inserts against the email
// and secret code indexes into conflicts instead of internal errors.
func IsDuplicateKey(err error) bool {
	var my *mysql.MySQLError
	return errors.As(err, &my) && my.Number == mysqlDuplicateEntry
}
