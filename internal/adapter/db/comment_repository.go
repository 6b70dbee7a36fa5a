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

const selectCommentQuery = `
SELECT cm.id, cm.exhibit_id, cm.content, cm.author_id, cm.parent_id,
  cm.created_at, cm.updated_at,
  u.name AS author_name, u.image AS author_image
FROM comments cm
LEFT JOIN users u ON u.id = cm.author_id
`

const commentCursorQuery = `
SELECT created_at FROM comments WHERE id = ?;
`

const listRepliesQuery = `
SELECT cm.id, cm.exhibit_id, cm.content, cm.author_id, cm.parent_id,
  cm.created_at, cm.updated_at,
  u.name AS author_name, u.image AS author_image
FROM comments cm
LEFT JOIN users u ON u.id = cm.author_id
WHERE cm.parent_id IN (?)
ORDER BY cm.created_at, cm.id;
`

const insertCommentQuery = `
INSERT INTO comments (id, exhibit_id, content, author_id, parent_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

const deleteRepliesQuery = `
DELETE FROM comments WHERE parent_id = ?;
`

const deleteCommentQuery = `
DELETE FROM comments WHERE id = ?;
`

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID          string         `db:"id"`
	ExhibitID   string         `db:"exhibit_id"`
	Content     string         `db:"content"`
	AuthorID    string         `db:"author_id"`
	ParentID    sql.NullString `db:"parent_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	AuthorName  sql.NullString `db:"author_name"`
	AuthorImage sql.NullString `db:"author_image"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, selectCommentQuery+"WHERE cm.id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return mapCommentRowToDomainComment(row), nil
}

func (r *CommentRepository) ListTopLevel(ctx context.Context, exhibitID string, cursor *string, limit int) ([]domain.Comment, error) {
	query := selectCommentQuery + "WHERE cm.exhibit_id = ? AND cm.parent_id IS NULL\n"
	args := []any{exhibitID}

	if cursor != nil {
		var cursorCreatedAt time.Time
		if err := r.db.GetContext(ctx, &cursorCreatedAt, commentCursorQuery, *cursor); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrCommentNotFound
			}
			return nil, err
		}
		query += "AND (cm.created_at < ? OR (cm.created_at = ? AND cm.id < ?))\n"
		args = append(args, cursorCreatedAt, cursorCreatedAt, *cursor)
	}

	query += "ORDER BY cm.created_at DESC, cm.id DESC\nLIMIT ?;"
	args = append(args, limit)

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	comments := mapCommentRows(rows)
	if err := r.attachReplies(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) ListThread(ctx context.Context, exhibitID string) ([]domain.Comment, error) {
	query := selectCommentQuery +
		"WHERE cm.exhibit_id = ? AND cm.parent_id IS NULL\nORDER BY cm.created_at DESC, cm.id DESC;"

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, exhibitID); err != nil {
		return nil, err
	}

	comments := mapCommentRows(rows)
	if err := r.attachReplies(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) error {
	_, err := r.db.ExecContext(ctx, insertCommentQuery,
		comment.ID,
		comment.ExhibitID,
		comment.Content,
		comment.AuthorID,
		nullString(comment.ParentID),
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	return err
}

// DeleteWithReplies removes the comment and its direct replies in one
// transaction, so a cascade never leaves orphaned replies behind.
func (r *CommentRepository) DeleteWithReplies(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteRepliesQuery, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, deleteCommentQuery, id)
	if err != nil {
		return err
	}
	if err := noneAffectedAs(result, domain.ErrCommentNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CommentRepository) attachReplies(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]string, 0, len(comments))
	for _, comment := range comments {
		ids = append(ids, comment.ID)
	}

	query, args, err := sqlx.In(listRepliesQuery, ids)
	if err != nil {
		return err
	}

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}

	repliesByParent := make(map[string][]domain.Comment, len(comments))
	for _, row := range rows {
		reply := mapCommentRowToDomainComment(row)
		repliesByParent[row.ParentID.String] = append(repliesByParent[row.ParentID.String], reply)
	}
	for i := range comments {
		comments[i].Replies = repliesByParent[comments[i].ID]
	}
	return nil
}

func mapCommentRows(rows []commentRow) []domain.Comment {
	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRowToDomainComment(row))
	}
	return comments
}

func mapCommentRowToDomainComment(row commentRow) domain.Comment {
	comment := domain.Comment{
		ID:        row.ID,
		ExhibitID: row.ExhibitID,
		Content:   row.Content,
		AuthorID:  row.AuthorID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.ParentID.Valid {
		value := row.ParentID.String
		comment.ParentID = &value
	}

	if row.AuthorName.Valid {
		author := domain.UserSummary{ID: row.AuthorID, Name: row.AuthorName.String}
		if row.AuthorImage.Valid {
			value := row.AuthorImage.String
			author.Image = &value
		}
		comment.Author = &author
	}

	return comment
}
