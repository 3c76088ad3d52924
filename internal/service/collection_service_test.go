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

func TestCollectionAdd(t *testing.T) {
	collectionRepo := new(MockCollectionRepository)
	pointRepo := new(MockPointRepository)
	svc := NewCollectionService(collectionRepo, pointRepo)

	pointID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)
	collectionRepo.On("Exists", mock.Anything, pointID, "u1").Return(false, nil)
	collectionRepo.On("Add", mock.Anything, mock.Anything).Return(nil)

	err := svc.Add(context.Background(), "u1", dto.AddCollectionRequest{PointID: pointID.String()})
	assert.NoError(t, err)
	collectionRepo.AssertExpectations(t)
}

func TestCollectionAdd_AlreadyCollected(t *testing.T) {
	collectionRepo := new(MockCollectionRepository)
	pointRepo := new(MockPointRepository)
	svc := NewCollectionService(collectionRepo, pointRepo)

	pointID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(&model.Point{ID: pointID}, nil)
	collectionRepo.On("Exists", mock.Anything, pointID, "u1").Return(true, nil)

	err := svc.Add(context.Background(), "u1", dto.AddCollectionRequest{PointID: pointID.String()})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	collectionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCollectionAdd_MissingPoint(t *testing.T) {
	collectionRepo := new(MockCollectionRepository)
	pointRepo := new(MockPointRepository)
	svc := NewCollectionService(collectionRepo, pointRepo)

	pointID := uuid.New()
	pointRepo.On("FindByID", mock.Anything, pointID).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Add(context.Background(), "u1", dto.AddCollectionRequest{PointID: pointID.String()})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCollectionRemove_Idempotent(t *testing.T) {
	collectionRepo := new(MockCollectionRepository)
	pointRepo := new(MockPointRepository)
	svc := NewCollectionService(collectionRepo, pointRepo)

	pointID := uuid.New()
	collectionRepo.On("Remove", mock.Anything, pointID, "u1").Return(nil)

	err := svc.Remove(context.Background(), "u1", dto.RemoveCollectionRequest{PointID: pointID.String()})
	assert.NoError(t, err)
}

func TestCollectionCheck(t *testing.T) {
	collectionRepo := new(MockCollectionRepository)
	pointRepo := new(MockPointRepository)
	svc := NewCollectionService(collectionRepo, pointRepo)

	pointID := uuid.New()
	collectionRepo.On("Exists", mock.Anything, pointID, "u1").Return(true, nil)

	resp, err := svc.Check(context.Background(), "u1", dto.CheckCollectionRequest{PointID: pointID.String()})
	require.NoError(t, err)
	assert.True(t, resp.IsCollected)
}

func TestCollectionList_ToleratesDeletedPoints(t *testing.T) {
	collectionRepo := new(MockCollectionRepository)
	pointRepo := new(MockPointRepository)
	svc := NewCollectionService(collectionRepo, pointRepo)

	liveID := uuid.New()
	goneID := uuid.New()
	collectionRepo.On("ListByUser", mock.Anything, "u1", 0, 20).
		Return([]model.Collection{
			{PointID: liveID, UserID: "u1"},
			{PointID: goneID, UserID: "u1"},
		}, int64(2), nil)
	pointRepo.On("FindByID", mock.Anything, liveID).Return(&model.Point{ID: liveID, Title: "alive"}, nil)
	pointRepo.On("FindByID", mock.Anything, goneID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.List(context.Background(), "u1", dto.ListCollectionsRequest{})
	require.NoError(t, err)

	items := resp.List.([]dto.CollectionItem)
	require.Len(t, items, 2)
	assert.NotNil(t, items[0].PointInfo)
	assert.Nil(t, items[1].PointInfo)
}
