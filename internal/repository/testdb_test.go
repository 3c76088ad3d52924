package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.GameMap{},
		&model.Hero{},
		&model.Point{},
		&model.Comment{},
		&model.LikeRecord{},
		&model.Collection{},
		&model.Submission{},
	))

	return db
}

func seedPoint(t *testing.T, db *gorm.DB, userID string) *model.Point {
	t.Helper()

	point := &model.Point{
		UserID:      userID,
		MapID:       "m1",
		HeroID:      "h1",
		Title:       "window jump",
		Description: "boost from the crates, land on the ledge",
		Coordinates: model.Coordinates{X: 0.42, Y: 0.61},
	}
	require.NoError(t, db.Create(point).Error)
	return point
}
