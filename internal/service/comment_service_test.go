package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

func newCommentService(commentRepo *MockCommentRepository, pointRepo *MockPointRepository) CommentService {
	return NewCommentService(commentRepo, pointRepo, adminAuthorizer{}, nil, 0)
}

func TestCommentCreate_TopLevel(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)
	commentRepo.On("CreateTopLevel", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*model.Comment)
			c.ID = uuid.New()
			c.Floor = 7
		}).
		Return(nil)

	resp, err := svc.Create(context.Background(), "u1", dto.CreateCommentRequest{
		PointID: pointID.String(),
		Content: "great spot",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Floor)
	assert.NotEmpty(t, resp.CommentID)
	commentRepo.AssertExpectations(t)
}

func TestCommentCreate_SanitizesContent(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)

	var created *model.Comment
	commentRepo.On("CreateTopLevel", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Comment)
		}).
		Return(nil)

	_, err := svc.Create(context.Background(), "u1", dto.CreateCommentRequest{
		PointID: pointID.String(),
		Content: `<script>alert(1)</script>nice`,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "nice", created.Content)
}

func TestCommentCreate_MissingPoint(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "u1", dto.CreateCommentRequest{
		PointID: pointID.String(),
		Content: "hello",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	commentRepo.AssertNotCalled(t, "CreateTopLevel", mock.Anything, mock.Anything)
}

func TestCommentCreate_Reply(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	parentID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)
	commentRepo.On("FindByID", mock.Anything, parentID).
		Return(&model.Comment{ID: parentID, PointID: pointID, Floor: 3}, nil)

	var created *model.Comment
	commentRepo.On("CreateReply", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Comment)
			created.ID = uuid.New()
		}).
		Return(nil)

	resp, err := svc.Create(context.Background(), "u2", dto.CreateCommentRequest{
		PointID:  pointID.String(),
		Content:  "thanks",
		ParentID: parentID.String(),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Floor)
	require.NotNil(t, created.ParentID)
	assert.Equal(t, parentID, *created.ParentID)
}

func TestCommentCreate_ReplyToReplyRejected(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	grandParentID := uuid.New()
	parentID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)
	commentRepo.On("FindByID", mock.Anything, parentID).
		Return(&model.Comment{ID: parentID, PointID: pointID, ParentID: &grandParentID}, nil)

	_, err := svc.Create(context.Background(), "u2", dto.CreateCommentRequest{
		PointID:  pointID.String(),
		Content:  "nested",
		ParentID: parentID.String(),
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	commentRepo.AssertNotCalled(t, "CreateReply", mock.Anything, mock.Anything)
}

func TestCommentCreate_ParentOnDifferentPoint(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	parentID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)
	commentRepo.On("FindByID", mock.Anything, parentID).
		Return(&model.Comment{ID: parentID, PointID: uuid.New()}, nil)

	_, err := svc.Create(context.Background(), "u2", dto.CreateCommentRequest{
		PointID:  pointID.String(),
		Content:  "hello",
		ParentID: parentID.String(),
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCommentGet_GroupsRepliesUnderParents(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	pointID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	topLevel := []model.Comment{
		{ID: firstID, PointID: pointID, Floor: 1},
		{ID: secondID, PointID: pointID, Floor: 2},
	}
	replies := []model.Comment{
		{ID: uuid.New(), PointID: pointID, ParentID: &secondID},
		{ID: uuid.New(), PointID: pointID, ParentID: &secondID},
	}

	commentRepo.On("ListTopLevel", mock.Anything, pointID, 0, 20).Return(topLevel, int64(2), nil)
	commentRepo.On("ListReplies", mock.Anything, []uuid.UUID{firstID, secondID}).Return(replies, nil)

	resp, err := svc.Get(context.Background(), dto.GetCommentsRequest{PointID: pointID.String()})
	require.NoError(t, err)

	threads := resp.List.([]dto.CommentThread)
	require.Len(t, threads, 2)
	assert.Empty(t, threads[0].Replies)
	assert.Len(t, threads[1].Replies, 2)
	assert.Equal(t, int64(2), resp.Total)
}

func TestCommentUpdate_OwnerOnly(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	commentID := uuid.New()
	commentRepo.On("FindByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, UserID: "owner"}, nil)
	commentRepo.On("UpdateContent", mock.Anything, commentID, "edited").Return(nil)

	err := svc.Update(context.Background(), "intruder", dto.UpdateCommentRequest{
		ID:      commentID.String(),
		Content: "edited",
	})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)

	err = svc.Update(context.Background(), "owner", dto.UpdateCommentRequest{
		ID:      commentID.String(),
		Content: "edited",
	})
	assert.NoError(t, err)
}

func TestCommentDelete_OwnerCascades(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	pointRepo := new(MockPointRepository)
	svc := newCommentService(commentRepo, pointRepo)

	commentID := uuid.New()
	comment := &model.Comment{ID: commentID, UserID: "owner"}
	commentRepo.On("FindByID", mock.Anything, commentID).Return(comment, nil)
	commentRepo.On("DeleteCascade", mock.Anything, comment).Return(nil)

	err := svc.Delete(context.Background(), "owner", dto.DeleteCommentRequest{ID: commentID.String()})
	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestCommentCreate_InvalidPointID(t *testing.T) {
	svc := newCommentService(new(MockCommentRepository), new(MockPointRepository))

	_, err := svc.Create(context.Background(), "u1", dto.CreateCommentRequest{
		PointID: "not-a-uuid",
		Content: "hello",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
