package mapper

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
)

func TestSelectCategories(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewCategoryMapper(gdb)

	mock.ExpectQuery("SELECT id, name FROM categories ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "furniture").AddRow(2, "bikes"))

	categories, err := m.SelectCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []dto.CategoryDTO{{ID: 1, Name: "furniture"}, {ID: 2, Name: "bikes"}}, categories)
}

func TestGetCategory(t *testing.T) {
	gdb, mock := newEqualMockDB(t)
	m := NewCategoryMapper(gdb)

	mock.ExpectQuery("SELECT id, name FROM categories WHERE id = $1").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "bikes"))
	mock.ExpectQuery(pg(getCategorySQL)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	c, err := m.GetCategory(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "bikes", c.Name)

	missing, err := m.GetCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRegisterCategory(t *testing.T) {
	gdb, mock := newMockDB(t)
	m := NewCategoryMapper(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "categories" ("name") VALUES ($1) RETURNING "id"`)).
		WithArgs("bikes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	c, err := m.Register(context.Background(), "bikes")
	require.NoError(t, err)
	assert.Equal(t, &dto.CategoryDTO{ID: 9, Name: "bikes"}, c)
}

func TestRegisterCategoryDuplicate(t *testing.T) {
	gdb, mock := newMockDB(t)
	m := NewCategoryMapper(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "categories"`)).
		WithArgs("bikes").
		WillReturnError(gorm.ErrDuplicatedKey)

	_, err := m.Register(context.Background(), "bikes")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
