package specification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noteRow struct {
	Id uuid.UUID
}

func (noteRow) TableName() string { return "notes" }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost dbname=dry"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestSpecifications_SQL(t *testing.T) {
	db := dryRunDB(t)
	id := uuid.New()

	stmt := ByID{ID: id}.Apply(db).Find(&[]noteRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "id = $1")
	assert.Equal(t, []interface{}{id}, stmt.Vars)

	stmt = OrderBy{Field: "date"}.Apply(db).Find(&[]noteRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "ORDER BY date ASC")

	stmt = OrderBy{Field: "date", Desc: true}.Apply(db).Find(&[]noteRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "ORDER BY date DESC")
}
