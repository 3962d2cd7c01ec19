package recipes

import (
	"context"
	"fmt"
	"strings"

	"worldcraft/core/database"

	"gorm.io/gorm"
)

// Row is one definition stored in the recipe_definitions table.
type Row struct {
	ID       uint   `gorm:"primaryKey"`
	Category string `gorm:"size:64;index"`
	Name     string `gorm:"size:191"`
	Body     string `gorm:"type:text"`
	Disabled bool
}

// TableName pins the table name.
func (Row) TableName() string {
	return "recipe_definitions"
}

var requiredColumns = []string{"category", "name", "body", "disabled"}

// TableSource reads enabled definitions from the database.
type TableSource struct {
	db *gorm.DB
}

// NewTableSource creates a table source.
func NewTableSource(db *gorm.DB) *TableSource {
	return &TableSource{db: db}
}

func (s *TableSource) Name() string {
	return "table:" + Row{}.TableName()
}

// Documents returns enabled rows ordered by category, name and id.
func (s *TableSource) Documents(ctx context.Context) ([]Document, error) {
	if s.db == nil {
		return nil, fmt.Errorf("table source has no database connection")
	}

	missing, err := database.MissingColumns(s.db, Row{}.TableName(), requiredColumns...)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("table %s is missing columns: %s", Row{}.TableName(), strings.Join(missing, ", "))
	}

	var rows []Row
	err = s.db.WithContext(ctx).
		Where("disabled = ?", false).
		Order("category, name, id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe definitions: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, Document{
			Category: r.Category,
			Name:     r.Name,
			Body:     []byte(r.Body),
			Origin:   fmt.Sprintf("%s#%d", Row{}.TableName(), r.ID),
		})
	}
	return docs, nil
}
