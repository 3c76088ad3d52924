package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPointRepository struct {
	mock.Mock
}

func (m *MockPointRepository) Create(ctx context.Context, point *model.Point) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *MockPointRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

func (m *MockPointRepository) List(ctx context.Context, filter repository.PointFilter, offset, limit int) ([]model.Point, int64, error) {
	args := m.Called(ctx, filter, offset, limit)
	var points []model.Point
	if args.Get(0) != nil {
		points = args.Get(0).([]model.Point)
	}
	return points, args.Get(1).(int64), args.Error(2)
}

func (m *MockPointRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockPointRepository) IncrementViews(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockPointRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) CreateTopLevel(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) CreateReply(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListTopLevel(ctx context.Context, pointID uuid.UUID, offset, limit int) ([]model.Comment, int64, error) {
	args := m.Called(ctx, pointID, offset, limit)
	var comments []model.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]model.Comment)
	}
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, parentIDs)
	var replies []model.Comment
	if args.Get(0) != nil {
		replies = args.Get(0).([]model.Comment)
	}
	return replies, args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteCascade(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) SetLike(ctx context.Context, subjectType string, subjectID uuid.UUID, userID string, desired bool) error {
	args := m.Called(ctx, subjectType, subjectID, userID, desired)
	return args.Error(0)
}

func (m *MockLikeRepository) HasLiked(ctx context.Context, subjectType string, subjectID uuid.UUID, userID string) (bool, error) {
	args := m.Called(ctx, subjectType, subjectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountBySubject(ctx context.Context, subjectType string, subjectID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subjectType, subjectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) Recount(ctx context.Context, subjectType string, subjectID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subjectType, subjectID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Add(ctx context.Context, collection *model.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) Remove(ctx context.Context, pointID uuid.UUID, userID string) error {
	args := m.Called(ctx, pointID, userID)
	return args.Error(0)
}

func (m *MockCollectionRepository) Exists(ctx context.Context, pointID uuid.UUID, userID string) (bool, error) {
	args := m.Called(ctx, pointID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Collection, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	var collections []model.Collection
	if args.Get(0) != nil {
		collections = args.Get(0).([]model.Collection)
	}
	return collections, args.Get(1).(int64), args.Error(2)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) List(ctx context.Context, userID, status string, offset, limit int) ([]model.Submission, int64, error) {
	args := m.Called(ctx, userID, status, offset, limit)
	var submissions []model.Submission
	if args.Get(0) != nil {
		submissions = args.Get(0).([]model.Submission)
	}
	return submissions, args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionRepository) UpdatePending(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockSubmissionRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Reject(ctx context.Context, id uuid.UUID, reviewerID, reason string) error {
	args := m.Called(ctx, id, reviewerID, reason)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Approve(ctx context.Context, id uuid.UUID, reviewerID string) (*model.Point, error) {
	args := m.Called(ctx, id, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Point), args.Error(1)
}

// adminAuthorizer and denyAuthorizer keep tests that only care about the
// outcome of the check free of user-repo expectations.
type adminAuthorizer struct{}

func (adminAuthorizer) RequireAdmin(ctx context.Context, callerID string) error { return nil }
func (adminAuthorizer) RequireOwner(callerID, ownerID string) error {
	return NewAuthorizer(nil).RequireOwner(callerID, ownerID)
}

func newUserRepoWith(user *model.User) *MockUserRepository {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	return repo
}
