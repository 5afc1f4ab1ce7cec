package sqldb

import (
	"testing"

	"github.com/aretw0/registrar/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDialect_Placeholders(t *testing.T) {
	assert.Equal(t,
		`UPDATE "Students" SET "Major" = ? WHERE "StudentId" = ?`,
		DialectSQLite.update(domain.FieldMajor))
	assert.Equal(t,
		`UPDATE "Students" SET "GPA" = $1 WHERE "StudentId" = $2`,
		DialectPostgres.update(domain.FieldGPA))
}

func TestDialect_Insert(t *testing.T) {
	q := DialectPostgres.insert(true)
	assert.Contains(t, q, `("FirstName", "LastName", "GPA", "Major", "FacultyAdvisor", "Address", "City", "State", "ZipCode", "MobilePhoneNumber")`)
	assert.Contains(t, q, "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)")
	assert.Contains(t, q, `RETURNING "StudentId"`)
	assert.NotContains(t, DialectSQLite.insert(false), "RETURNING")
}

func TestDialect_CreateTable(t *testing.T) {
	lite := DialectSQLite.createTable()
	assert.Contains(t, lite, `"StudentId" INTEGER PRIMARY KEY AUTOINCREMENT`)
	assert.Contains(t, lite, `"GPA" REAL`)
	assert.Contains(t, lite, `"isDeleted" INTEGER NOT NULL DEFAULT 0`)

	pg := DialectPostgres.createTable()
	assert.Contains(t, pg, `"StudentId" BIGSERIAL PRIMARY KEY`)
	assert.Contains(t, pg, `"GPA" DOUBLE PRECISION`)
}

func TestDialect_SelectWhere(t *testing.T) {
	assert.Equal(t,
		`SELECT "StudentId", "FirstName", "LastName", "GPA", "Major", "FacultyAdvisor", "Address", "City", "State", "ZipCode", "MobilePhoneNumber", "isDeleted" FROM "Students" WHERE "City" = $1 ORDER BY "StudentId"`,
		DialectPostgres.selectWhere(domain.FieldCity))
}
