package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

func newCommentServiceForTest(comments *commentRepositoryMock, exhibits *exhibitRepositoryMock) *CommentService {
	s := NewCommentService(comments, exhibits)
	s.now = func() time.Time { return testNow }
	return s
}

func TestCommentService_List_PagesWithCursor(t *testing.T) {
	items := make([]domain.Comment, commentPageSize+1)
	for i := range items {
		items[i] = domain.Comment{ID: string(rune('a' + i))}
	}

	comments := new(commentRepositoryMock)
	comments.On("ListTopLevel", mock.Anything, "e1", (*string)(nil), commentPageSize+1).Return(items, nil).Once()

	s := newCommentServiceForTest(comments, new(exhibitRepositoryMock))
	page, err := s.List(context.Background(), "e1", nil)

	require.NoError(t, err)
	require.Len(t, page.Items, commentPageSize)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, page.Items[commentPageSize-1].ID, *page.NextCursor)
	comments.AssertExpectations(t)
}

func TestCommentService_List_LastPageHasNoCursor(t *testing.T) {
	comments := new(commentRepositoryMock)
	comments.On("ListTopLevel", mock.Anything, "e1", (*string)(nil), commentPageSize+1).Return([]domain.Comment{{ID: "only"}}, nil).Once()

	s := newCommentServiceForTest(comments, new(exhibitRepositoryMock))
	page, err := s.List(context.Background(), "e1", nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Nil(t, page.NextCursor)
}

func TestCommentService_Create_TopLevel(t *testing.T) {
	exhibits := new(exhibitRepositoryMock)
	exhibits.On("GetByID", mock.Anything, "e1").Return(domain.Exhibit{ID: "e1"}, nil).Once()

	comments := new(commentRepositoryMock)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(comment domain.Comment) bool {
		return comment.ExhibitID == "e1" && comment.AuthorID == "user-1" && comment.ParentID == nil
	})).Return(nil).Once()

	s := newCommentServiceForTest(comments, exhibits)
	comment, err := s.Create(context.Background(), domain.CallerIdentity{UserID: "user-1"}, domain.CreateCommentInput{
		ExhibitID: "e1",
		Content:   "  lovely entry  ",
	})

	require.NoError(t, err)
	require.Equal(t, "lovely entry", comment.Content)
	require.NotEmpty(t, comment.ID)
	comments.AssertExpectations(t)
	exhibits.AssertExpectations(t)
}

func TestCommentService_Create_ReplyChecks(t *testing.T) {
	exhibits := new(exhibitRepositoryMock)
	exhibits.On("GetByID", mock.Anything, "e1").Return(domain.Exhibit{ID: "e1"}, nil)

	otherParent := "other-exhibit-comment"
	replyParent := "already-a-reply"
	grandparent := "top"
	parentID := "parent"

	comments := new(commentRepositoryMock)
	comments.On("GetByID", mock.Anything, otherParent).Return(domain.Comment{ID: otherParent, ExhibitID: "e2"}, nil).Once()
	comments.On("GetByID", mock.Anything, replyParent).Return(domain.Comment{ID: replyParent, ExhibitID: "e1", ParentID: &grandparent}, nil).Once()
	comments.On("GetByID", mock.Anything, parentID).Return(domain.Comment{ID: parentID, ExhibitID: "e1"}, nil).Once()
	comments.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	s := newCommentServiceForTest(comments, exhibits)
	caller := domain.CallerIdentity{UserID: "user-1"}

	// Parent on another exhibit.
	_, err := s.Create(context.Background(), caller, domain.CreateCommentInput{ExhibitID: "e1", Content: "hi", ParentID: &otherParent})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Parent is itself a reply.
	_, err = s.Create(context.Background(), caller, domain.CreateCommentInput{ExhibitID: "e1", Content: "hi", ParentID: &replyParent})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Valid single-level reply.
	comment, err := s.Create(context.Background(), caller, domain.CreateCommentInput{ExhibitID: "e1", Content: "hi", ParentID: &parentID})
	require.NoError(t, err)
	require.Equal(t, parentID, *comment.ParentID)
	comments.AssertExpectations(t)
}

func TestCommentService_Create_Validation(t *testing.T) {
	s := newCommentServiceForTest(new(commentRepositoryMock), new(exhibitRepositoryMock))
	caller := domain.CallerIdentity{UserID: "user-1"}

	_, err := s.Create(context.Background(), caller, domain.CreateCommentInput{ExhibitID: "e1", Content: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Create(context.Background(), caller, domain.CreateCommentInput{ExhibitID: "e1", Content: strings.Repeat("x", 5001)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Create(context.Background(), domain.CallerIdentity{}, domain.CreateCommentInput{ExhibitID: "e1", Content: "hi"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCommentService_Create_ExhibitMustExist(t *testing.T) {
	exhibits := new(exhibitRepositoryMock)
	exhibits.On("GetByID", mock.Anything, "missing").Return(domain.Exhibit{}, domain.ErrExhibitNotFound).Once()

	s := newCommentServiceForTest(new(commentRepositoryMock), exhibits)
	_, err := s.Create(context.Background(), domain.CallerIdentity{UserID: "user-1"}, domain.CreateCommentInput{
		ExhibitID: "missing",
		Content:   "hi",
	})
	require.ErrorIs(t, err, domain.ErrExhibitNotFound)
}

func TestCommentService_Delete_AuthorOrAdmin(t *testing.T) {
	existing := domain.Comment{ID: "c1", ExhibitID: "e1", AuthorID: "author"}

	comments := new(commentRepositoryMock)
	comments.On("GetByID", mock.Anything, "c1").Return(existing, nil).Times(3)
	comments.On("DeleteWithReplies", mock.Anything, "c1").Return(nil).Twice()

	s := newCommentServiceForTest(comments, new(exhibitRepositoryMock))

	require.NoError(t, s.Delete(context.Background(), domain.CallerIdentity{UserID: "author"}, "c1"))
	require.NoError(t, s.Delete(context.Background(), domain.CallerIdentity{UserID: "mod", IsAdmin: true}, "c1"))
	require.ErrorIs(t, s.Delete(context.Background(), domain.CallerIdentity{UserID: "stranger"}, "c1"), domain.ErrForbidden)
	comments.AssertExpectations(t)
}
