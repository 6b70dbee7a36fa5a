package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
)

const selectExhibitQuery = `
SELECT
  e.id, e.title, e.slug, e.description, e.content, e.cover_image,
  e.category_id, e.visibility, e.emotion_score, e.exhibit_date,
  e.user_id, e.payload, e.created_at, e.updated_at,
  c.name AS category_name, c.slug AS category_slug,
  c.color AS category_color, c.icon AS category_icon,
  u.name AS author_name, u.image AS author_image,
  (SELECT COUNT(*) FROM comments cm WHERE cm.exhibit_id = e.id) AS comment_count
FROM exhibits e
JOIN categories c ON c.id = e.category_id
LEFT JOIN users u ON u.id = e.user_id
`

const exhibitCursorQuery = `
SELECT created_at FROM exhibits WHERE id = ?;
`

const exhibitSlugExistsQuery = `
SELECT EXISTS(SELECT 1 FROM exhibits WHERE slug = ? AND id <> ?);
`

const insertExhibitQuery = `
INSERT INTO exhibits (id, title, slug, description, content, cover_image, category_id,
  visibility, emotion_score, exhibit_date, user_id, payload, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const updateExhibitQuery = `
UPDATE exhibits
SET title = ?, slug = ?, description = ?, content = ?, cover_image = ?, category_id = ?,
  visibility = ?, emotion_score = ?, exhibit_date = ?, payload = ?, updated_at = ?
WHERE id = ?;
`

const deleteExhibitQuery = `
DELETE FROM exhibits WHERE id = ?;
`

const deleteExhibitTagsQuery = `
DELETE FROM exhibit_tags WHERE exhibit_id = ?;
`

const insertExhibitTagQuery = `
INSERT INTO exhibit_tags (exhibit_id, tag_id) VALUES (?, ?);
`

const listExhibitTagsQuery = `
SELECT et.exhibit_id, t.id, t.name, t.slug, t.created_at
FROM exhibit_tags et
JOIN tags t ON t.id = et.tag_id
WHERE et.exhibit_id IN (?)
ORDER BY t.name;
`

type ExhibitRepository struct {
	db *sqlx.DB
}

type exhibitRow struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Slug         string         `db:"slug"`
	Description  sql.NullString `db:"description"`
	Content      string         `db:"content"`
	CoverImage   sql.NullString `db:"cover_image"`
	CategoryID   string         `db:"category_id"`
	Visibility   string         `db:"visibility"`
	EmotionScore sql.NullInt64  `db:"emotion_score"`
	ExhibitDate  sql.NullTime   `db:"exhibit_date"`
	UserID       string         `db:"user_id"`
	Payload      []byte         `db:"payload"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`

	CategoryName  string         `db:"category_name"`
	CategorySlug  string         `db:"category_slug"`
	CategoryColor sql.NullString `db:"category_color"`
	CategoryIcon  sql.NullString `db:"category_icon"`
	AuthorName    sql.NullString `db:"author_name"`
	AuthorImage   sql.NullString `db:"author_image"`
	CommentCount  int            `db:"comment_count"`
}

type exhibitTagRow struct {
	ExhibitID string    `db:"exhibit_id"`
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.ExhibitRepository = (*ExhibitRepository)(nil)

func NewExhibitRepository(db *sqlx.DB) *ExhibitRepository {
	return &ExhibitRepository{db: db}
}

func (r *ExhibitRepository) List(ctx context.Context, filter domain.ExhibitFilter, limit int) ([]domain.Exhibit, error) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if filter.Visibility != nil {
		conditions = append(conditions, "e.visibility = ?")
		args = append(args, string(*filter.Visibility))
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "e.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.UserID != nil {
		conditions = append(conditions, "e.user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.Cursor != nil {
		var cursorCreatedAt time.Time
		if err := r.db.GetContext(ctx, &cursorCreatedAt, exhibitCursorQuery, *filter.Cursor); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrExhibitNotFound
			}
			return nil, err
		}
		conditions = append(conditions, "(e.created_at < ? OR (e.created_at = ? AND e.id < ?))")
		args = append(args, cursorCreatedAt, cursorCreatedAt, *filter.Cursor)
	}

	query := selectExhibitQuery
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY e.created_at DESC, e.id DESC\nLIMIT ?;"
	args = append(args, limit)

	var rows []exhibitRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	exhibits := make([]domain.Exhibit, 0, len(rows))
	for _, row := range rows {
		exhibit, err := mapExhibitRowToDomainExhibit(row)
		if err != nil {
			return nil, err
		}
		exhibits = append(exhibits, exhibit)
	}

	if err := r.attachTags(ctx, exhibits); err != nil {
		return nil, err
	}
	return exhibits, nil
}

func (r *ExhibitRepository) GetByID(ctx context.Context, id string) (domain.Exhibit, error) {
	return r.get(ctx, selectExhibitQuery+"WHERE e.id = ?;", id)
}

func (r *ExhibitRepository) GetBySlug(ctx context.Context, slug string) (domain.Exhibit, error) {
	return r.get(ctx, selectExhibitQuery+"WHERE e.slug = ?;", slug)
}

func (r *ExhibitRepository) get(ctx context.Context, query, arg string) (domain.Exhibit, error) {
	var row exhibitRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Exhibit{}, domain.ErrExhibitNotFound
		}
		return domain.Exhibit{}, err
	}

	exhibit, err := mapExhibitRowToDomainExhibit(row)
	if err != nil {
		return domain.Exhibit{}, err
	}

	exhibits := []domain.Exhibit{exhibit}
	if err := r.attachTags(ctx, exhibits); err != nil {
		return domain.Exhibit{}, err
	}
	return exhibits[0], nil
}

func (r *ExhibitRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, exhibitSlugExistsQuery, slug, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ExhibitRepository) Create(ctx context.Context, exhibit domain.Exhibit) error {
	payload, err := marshalPayload(exhibit.Payload)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertExhibitQuery,
		exhibit.ID,
		exhibit.Title,
		exhibit.Slug,
		nullString(exhibit.Description),
		exhibit.Content,
		nullString(exhibit.CoverImage),
		exhibit.CategoryID,
		string(exhibit.Visibility),
		nullInt(exhibit.EmotionScore),
		nullTime(exhibit.ExhibitDate),
		exhibit.UserID,
		payload,
		exhibit.CreatedAt,
		exhibit.UpdatedAt,
	)
	if isDuplicateKey(err) {
		return domain.ErrSlugConflict
	}
	return err
}

func (r *ExhibitRepository) Update(ctx context.Context, exhibit domain.Exhibit) error {
	payload, err := marshalPayload(exhibit.Payload)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, updateExhibitQuery,
		exhibit.Title,
		exhibit.Slug,
		nullString(exhibit.Description),
		exhibit.Content,
		nullString(exhibit.CoverImage),
		exhibit.CategoryID,
		string(exhibit.Visibility),
		nullInt(exhibit.EmotionScore),
		nullTime(exhibit.ExhibitDate),
		payload,
		exhibit.UpdatedAt,
		exhibit.ID,
	)
	if isDuplicateKey(err) {
		return domain.ErrSlugConflict
	}
	if err != nil {
		return err
	}
	return noneAffectedAs(result, domain.ErrExhibitNotFound)
}

func (r *ExhibitRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteExhibitQuery, id)
	if err != nil {
		return err
	}
	return noneAffectedAs(result, domain.ErrExhibitNotFound)
}

func (r *ExhibitRepository) ReplaceTags(ctx context.Context, exhibitID string, tagIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteExhibitTagsQuery, exhibitID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, insertExhibitTagQuery, exhibitID, tagID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ExhibitRepository) attachTags(ctx context.Context, exhibits []domain.Exhibit) error {
	if len(exhibits) == 0 {
		return nil
	}

	ids := make([]string, 0, len(exhibits))
	for _, exhibit := range exhibits {
		ids = append(ids, exhibit.ID)
	}

	query, args, err := sqlx.In(listExhibitTagsQuery, ids)
	if err != nil {
		return err
	}

	var rows []exhibitTagRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}

	tagsByExhibit := make(map[string][]domain.Tag, len(exhibits))
	for _, row := range rows {
		tagsByExhibit[row.ExhibitID] = append(tagsByExhibit[row.ExhibitID], domain.Tag{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			CreatedAt: row.CreatedAt,
		})
	}
	for i := range exhibits {
		exhibits[i].Tags = tagsByExhibit[exhibits[i].ID]
	}
	return nil
}

func mapExhibitRowToDomainExhibit(row exhibitRow) (domain.Exhibit, error) {
	exhibit := domain.Exhibit{
		ID:           row.ID,
		Title:        row.Title,
		Slug:         row.Slug,
		Content:      row.Content,
		CategoryID:   row.CategoryID,
		Visibility:   domain.Visibility(row.Visibility),
		UserID:       row.UserID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		CommentCount: row.CommentCount,
	}

	if row.Description.Valid {
		value := row.Description.String
		exhibit.Description = &value
	}
	if row.CoverImage.Valid {
		value := row.CoverImage.String
		exhibit.CoverImage = &value
	}
	if row.EmotionScore.Valid {
		value := int(row.EmotionScore.Int64)
		exhibit.EmotionScore = &value
	}
	if row.ExhibitDate.Valid {
		value := row.ExhibitDate.Time
		exhibit.ExhibitDate = &value
	}
	if len(row.Payload) > 0 {
		if err := json.Unmarshal(row.Payload, &exhibit.Payload); err != nil {
			return domain.Exhibit{}, fmt.Errorf("unmarshal exhibit payload: %w", err)
		}
	}

	category := domain.Category{
		ID:   row.CategoryID,
		Name: row.CategoryName,
		Slug: row.CategorySlug,
	}
	if row.CategoryColor.Valid {
		value := row.CategoryColor.String
		category.Color = &value
	}
	if row.CategoryIcon.Valid {
		value := row.CategoryIcon.String
		category.Icon = &value
	}
	exhibit.Category = &category

	if row.AuthorName.Valid {
		author := domain.UserSummary{ID: row.UserID, Name: row.AuthorName.String}
		if row.AuthorImage.Valid {
			value := row.AuthorImage.String
			author.Image = &value
		}
		exhibit.Author = &author
	}

	return exhibit, nil
}

func marshalPayload(payload domain.ExhibitPayload) (any, error) {
	if payload.Empty() {
		return nil, nil
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal exhibit payload: %w", err)
	}
	return encoded, nil
}

func nullInt(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}
