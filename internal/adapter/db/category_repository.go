package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
)

const listCategoriesQuery = `
SELECT c.id, c.name, c.slug, c.color, c.icon, c.created_at, c.updated_at,
  (SELECT COUNT(*) FROM exhibits e WHERE e.category_id = c.id) AS exhibit_count
FROM categories c
ORDER BY c.name;
`

const getCategoryByIDQuery = `
SELECT c.id, c.name, c.slug, c.color, c.icon, c.created_at, c.updated_at,
  (SELECT COUNT(*) FROM exhibits e WHERE e.category_id = c.id) AS exhibit_count
FROM categories c
WHERE c.id = ?;
`

const getCategoryBySlugQuery = `
SELECT c.id, c.name, c.slug, c.color, c.icon, c.created_at, c.updated_at,
  (SELECT COUNT(*) FROM exhibits e WHERE e.category_id = c.id) AS exhibit_count
FROM categories c
WHERE c.slug = ?;
`

const categorySlugExistsQuery = `
SELECT EXISTS(SELECT 1 FROM categories WHERE slug = ? AND id <> ?);
`

const categoryNameExistsQuery = `
SELECT EXISTS(SELECT 1 FROM categories WHERE name = ? AND id <> ?);
`

const insertCategoryQuery = `
INSERT INTO categories (id, name, slug, color, icon, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

const updateCategoryQuery = `
UPDATE categories
SET name = ?, slug = ?, color = ?, icon = ?, updated_at = ?
WHERE id = ?;
`

const deleteCategoryQuery = `
DELETE FROM categories WHERE id = ?;
`

const countCategoryExhibitsQuery = `
SELECT COUNT(*) FROM exhibits WHERE category_id = ?;
`

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	Color        sql.NullString `db:"color"`
	Icon         sql.NullString `db:"icon"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	ExhibitCount int            `db:"exhibit_count"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesQuery); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	return r.get(ctx, getCategoryByIDQuery, id)
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	return r.get(ctx, getCategoryBySlugQuery, slug)
}

func (r *CategoryRepository) get(ctx context.Context, query, arg string) (domain.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return mapCategoryRowToDomainCategory(row), nil
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, categorySlugExistsQuery, slug, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, categoryNameExistsQuery, name, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) error {
	_, err := r.db.ExecContext(ctx, insertCategoryQuery,
		category.ID,
		category.Name,
		category.Slug,
		nullString(category.Color),
		nullString(category.Icon),
		category.CreatedAt,
		category.UpdatedAt,
	)
	if isDuplicateKeyOn(err, "uq_categories_name") {
		return domain.ErrCategoryNameTaken
	}
	if isDuplicateKey(err) {
		return domain.ErrSlugConflict
	}
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	result, err := r.db.ExecContext(ctx, updateCategoryQuery,
		category.Name,
		category.Slug,
		nullString(category.Color),
		nullString(category.Icon),
		category.UpdatedAt,
		category.ID,
	)
	if isDuplicateKeyOn(err, "uq_categories_name") {
		return domain.ErrCategoryNameTaken
	}
	if isDuplicateKey(err) {
		return domain.ErrSlugConflict
	}
	if err != nil {
		return err
	}
	return noneAffectedAs(result, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteCategoryQuery, id)
	if err != nil {
		return err
	}
	return noneAffectedAs(result, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) CountExhibits(ctx context.Context, id string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, countCategoryExhibitsQuery, id); err != nil {
		return 0, err
	}
	return count, nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	category := domain.Category{
		ID:           row.ID,
		Name:         row.Name,
		Slug:         row.Slug,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		ExhibitCount: row.ExhibitCount,
	}

	if row.Color.Valid {
		value := row.Color.String
		category.Color = &value
	}

	if row.Icon.Valid {
		value := row.Icon.String
		category.Icon = &value
	}

	return category
}
