package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// isDuplicateKey reports whether err is a MySQL unique-constraint
// violation, the backstop for advisory slug probes that lost a race.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// isDuplicateKeyOn narrows isDuplicateKey to the named unique key; the
// server names the violated key in the error message.
func isDuplicateKeyOn(err error, key string) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry &&
		strings.Contains(mysqlErr.Message, key)
}
