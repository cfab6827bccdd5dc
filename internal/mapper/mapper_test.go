package mapper

import (
	"database/sql"
	"strconv"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	mydb "secondhand-market/internal/db"
)

// newMockDB returns a PostgreSQL-flavoured gorm handle on top of sqlmock.
func newMockDB(t *testing.T, matchers ...sqlmock.QueryMatcher) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	var (
		sqlDB *sql.DB
		mock  sqlmock.Sqlmock
		err   error
	)
	if len(matchers) > 0 {
		sqlDB, mock, err = sqlmock.New(sqlmock.QueryMatcherOption(matchers[0]))
	} else {
		sqlDB, mock, err = sqlmock.New()
	}
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), mydb.Options())
	require.NoError(t, err)
	return gdb, mock
}

func newEqualMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	return newMockDB(t, sqlmock.QueryMatcherEqual)
}

// pg rewrites "?" placeholders the way the postgres dialector does.
func pg(sql string) string {
	var (
		sb strings.Builder
		n  int
	)
	for _, r := range sql {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
