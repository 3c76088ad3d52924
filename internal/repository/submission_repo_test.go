package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

func seedSubmission(t *testing.T, db *gorm.DB, userID string) *model.Submission {
	t.Helper()

	submission := &model.Submission{
		UserID:      userID,
		MapID:       "m1",
		HeroID:      "h1",
		Title:       "rooftop angle",
		Description: "jump from the balcony rail",
		Coordinates: model.Coordinates{X: 0.3, Y: 0.7},
		Tags:        []string{"attack"},
		Status:      model.StatusPending,
	}
	require.NoError(t, db.Create(submission).Error)
	return submission
}

func TestApprove_MaterializesPoint(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	submission := seedSubmission(t, db, "u1")

	point, err := repo.Approve(ctx, submission.ID, "admin")
	require.NoError(t, err)
	require.NotNil(t, point)

	assert.Equal(t, submission.UserID, point.UserID)
	assert.Equal(t, submission.MapID, point.MapID)
	assert.Equal(t, submission.Title, point.Title)
	assert.Equal(t, submission.Coordinates, point.Coordinates)

	got, err := repo.FindByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)
	assert.Equal(t, "admin", got.ReviewerID)
	assert.NotNil(t, got.ReviewTime)
	require.NotNil(t, got.PointID)
	assert.Equal(t, point.ID, *got.PointID)
}

func TestApprove_SecondReviewCreatesNoSecondPoint(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	submission := seedSubmission(t, db, "u1")

	_, err := repo.Approve(ctx, submission.ID, "admin")
	require.NoError(t, err)

	_, err = repo.Approve(ctx, submission.ID, "admin2")
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	var points int64
	require.NoError(t, db.Model(&model.Point{}).Count(&points).Error)
	assert.Equal(t, int64(1), points)

	// the original review result is untouched
	got, err := repo.FindByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.ReviewerID)
}

func TestApprove_PublishesLatestPendingContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	submission := seedSubmission(t, db, "u1")

	// an edit that lands while the submission is still pending is the
	// version the approval must materialize
	require.NoError(t, repo.UpdatePending(ctx, submission.ID, map[string]interface{}{
		"title":       "revised angle",
		"description": "jump from the drainpipe instead",
	}))

	point, err := repo.Approve(ctx, submission.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, "revised angle", point.Title)
	assert.Equal(t, "jump from the drainpipe instead", point.Description)

	got, err := repo.FindByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Title, point.Title)
	assert.Equal(t, got.Description, point.Description)
}

func TestReject_SetsReason(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	submission := seedSubmission(t, db, "u1")

	require.NoError(t, repo.Reject(ctx, submission.ID, "admin", "duplicate of an existing point"))

	got, err := repo.FindByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, got.Status)
	assert.Equal(t, "duplicate of an existing point", got.Reason)
	assert.Nil(t, got.PointID)

	var points int64
	require.NoError(t, db.Model(&model.Point{}).Count(&points).Error)
	assert.Zero(t, points)
}

func TestReview_TerminalStatesAreFinal(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	rejected := seedSubmission(t, db, "u1")
	require.NoError(t, repo.Reject(ctx, rejected.ID, "admin", "no"))

	_, err := repo.Approve(ctx, rejected.ID, "admin")
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	err = repo.Reject(ctx, rejected.ID, "admin", "again")
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	approved := seedSubmission(t, db, "u1")
	_, err = repo.Approve(ctx, approved.ID, "admin")
	require.NoError(t, err)

	err = repo.Reject(ctx, approved.ID, "admin", "changed my mind")
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestUpdatePending_OnlyWhilePending(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	submission := seedSubmission(t, db, "u1")

	require.NoError(t, repo.UpdatePending(ctx, submission.ID, map[string]interface{}{
		"title": "updated angle",
	}))

	got, err := repo.FindByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated angle", got.Title)

	require.NoError(t, repo.Reject(ctx, submission.ID, "admin", "no"))

	err = repo.UpdatePending(ctx, submission.ID, map[string]interface{}{"title": "too late"})
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestDeletePending_OnlyWhilePending(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	pending := seedSubmission(t, db, "u1")
	require.NoError(t, repo.DeletePending(ctx, pending.ID))

	approved := seedSubmission(t, db, "u1")
	_, err := repo.Approve(ctx, approved.ID, "admin")
	require.NoError(t, err)

	err = repo.DeletePending(ctx, approved.ID)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestSubmissionList_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	seedSubmission(t, db, "u1")
	seedSubmission(t, db, "u1")
	other := seedSubmission(t, db, "u2")
	require.NoError(t, repo.Reject(ctx, other.ID, "admin", "no"))

	_, total, err := repo.List(ctx, "u1", "", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.List(ctx, "", model.StatusRejected, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = repo.List(ctx, "u2", model.StatusPending, 0, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
}
