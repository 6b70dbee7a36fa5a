package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListForDate(ctx context.Context, caller domain.CallerIdentity, date time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	args := m.Called(ctx, caller, date, category)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListForRange(ctx context.Context, caller domain.CallerIdentity, start, end time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	args := m.Called(ctx, caller, start, end, category)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ToggleStatus(ctx context.Context, caller domain.CallerIdentity, id string) (domain.Task, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *taskServiceMock) Statistics(ctx context.Context, caller domain.CallerIdentity, query domain.StatisticsQuery) (domain.Statistics, error) {
	args := m.Called(ctx, caller, query)
	return args.Get(0).(domain.Statistics), args.Error(1)
}

type exhibitServiceMock struct {
	mock.Mock
}

func (m *exhibitServiceMock) List(ctx context.Context, caller domain.CallerIdentity, filter domain.ExhibitFilter) (domain.ExhibitPage, error) {
	args := m.Called(ctx, caller, filter)
	return args.Get(0).(domain.ExhibitPage), args.Error(1)
}

func (m *exhibitServiceMock) GetBySlug(ctx context.Context, caller domain.CallerIdentity, slug string) (domain.Exhibit, error) {
	args := m.Called(ctx, caller, slug)
	return args.Get(0).(domain.Exhibit), args.Error(1)
}

func (m *exhibitServiceMock) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateExhibitInput) (domain.Exhibit, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.Exhibit), args.Error(1)
}

func (m *exhibitServiceMock) Update(ctx context.Context, caller domain.CallerIdentity, id string, input domain.UpdateExhibitInput) (domain.Exhibit, error) {
	args := m.Called(ctx, caller, id, input)
	return args.Get(0).(domain.Exhibit), args.Error(1)
}

func (m *exhibitServiceMock) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ResolveRef(ctx context.Context, ref string) (domain.Category, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Update(ctx context.Context, caller domain.CallerIdentity, id string, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, caller, id, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) List(ctx context.Context, exhibitID string, cursor *string) (domain.CommentPage, error) {
	args := m.Called(ctx, exhibitID, cursor)
	return args.Get(0).(domain.CommentPage), args.Error(1)
}

func (m *commentServiceMock) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}
