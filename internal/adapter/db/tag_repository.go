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

const getTagByNameQuery = `
SELECT id, name, slug, created_at FROM tags WHERE name = ?;
`

const insertTagQuery = `
INSERT INTO tags (id, name, slug, created_at) VALUES (?, ?, ?, ?);
`

type TagRepository struct {
	db *sqlx.DB
}

type tagRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.TagRepository = (*TagRepository)(nil)

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (domain.Tag, bool, error) {
	var row tagRow
	if err := r.db.GetContext(ctx, &row, getTagByNameQuery, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Tag{}, false, nil
		}
		return domain.Tag{}, false, err
	}
	return mapTagRowToDomainTag(row), true, nil
}

func (r *TagRepository) Create(ctx context.Context, tag domain.Tag) error {
	_, err := r.db.ExecContext(ctx, insertTagQuery, tag.ID, tag.Name, tag.Slug, tag.CreatedAt)
	if isDuplicateKey(err) {
		return domain.ErrSlugConflict
	}
	return err
}

func mapTagRowToDomainTag(row tagRow) domain.Tag {
	return domain.Tag{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		CreatedAt: row.CreatedAt,
	}
}
