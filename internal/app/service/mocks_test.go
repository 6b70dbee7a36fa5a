package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListForDate(ctx context.Context, userID string, date time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	args := m.Called(ctx, userID, date, category)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListForRange(ctx context.Context, userID string, start, end time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	args := m.Called(ctx, userID, start, end, category)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type exhibitRepositoryMock struct {
	mock.Mock
}

func (m *exhibitRepositoryMock) List(ctx context.Context, filter domain.ExhibitFilter, limit int) ([]domain.Exhibit, error) {
	args := m.Called(ctx, filter, limit)

	var exhibits []domain.Exhibit
	if value := args.Get(0); value != nil {
		exhibits = value.([]domain.Exhibit)
	}
	return exhibits, args.Error(1)
}

func (m *exhibitRepositoryMock) GetByID(ctx context.Context, id string) (domain.Exhibit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Exhibit), args.Error(1)
}

func (m *exhibitRepositoryMock) GetBySlug(ctx context.Context, slug string) (domain.Exhibit, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Exhibit), args.Error(1)
}

func (m *exhibitRepositoryMock) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *exhibitRepositoryMock) Create(ctx context.Context, exhibit domain.Exhibit) error {
	return m.Called(ctx, exhibit).Error(0)
}

func (m *exhibitRepositoryMock) Update(ctx context.Context, exhibit domain.Exhibit) error {
	return m.Called(ctx, exhibit).Error(0)
}

func (m *exhibitRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *exhibitRepositoryMock) ReplaceTags(ctx context.Context, exhibitID string, tagIDs []string) error {
	return m.Called(ctx, exhibitID, tagIDs).Error(0)
}

type tagRepositoryMock struct {
	mock.Mock
}

func (m *tagRepositoryMock) GetByName(ctx context.Context, name string) (domain.Tag, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Tag), args.Bool(1), args.Error(2)
}

func (m *tagRepositoryMock) Create(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetByID(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepositoryMock) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepositoryMock) Create(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepositoryMock) Update(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *categoryRepositoryMock) CountExhibits(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) ListTopLevel(ctx context.Context, exhibitID string, cursor *string, limit int) ([]domain.Comment, error) {
	args := m.Called(ctx, exhibitID, cursor, limit)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) ListThread(ctx context.Context, exhibitID string) ([]domain.Comment, error) {
	args := m.Called(ctx, exhibitID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) Create(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *commentRepositoryMock) DeleteWithReplies(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type categoryResolverMock struct {
	mock.Mock
}

func (m *categoryResolverMock) ResolveRef(ctx context.Context, ref string) (domain.Category, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(domain.Category), args.Error(1)
}
