package repository_test

import (
	"context"
	"testing"

	"movie-demo/internal/models"
	"movie-demo/internal/repository"
	"movie-demo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepository_CreateAndFind(t *testing.T) {
	repo := repository.NewMovieRepository(testutil.NewDatabase(t))
	ctx := context.Background()

	movie := &models.Movie{
		CoverImg: "https://img1.doubanio.com/view/photo/s_ratio_poster/public/p2516578307.webp",
		Title:    "头号玩家 Ready Player One (2018)",
		Desc:     "在2045年，现实世界衰退破败，人们沉迷于VR(虚拟现实)游戏“绿洲(OASIS)”的虚幻世界里寻求慰藉。",
	}
	require.NoError(t, repo.Create(ctx, movie))
	require.NotZero(t, movie.ID)
	assert.False(t, movie.CreatedAt.IsZero())
	assert.False(t, movie.UpdatedAt.IsZero())

	got, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie.CoverImg, got.CoverImg)
	assert.Equal(t, movie.Title, got.Title)
	assert.Equal(t, movie.Desc, got.Desc)
}

func TestMovieRepository_FindByIDNotFound(t *testing.T) {
	repo := repository.NewMovieRepository(testutil.NewDatabase(t))

	movie, err := repo.FindByID(context.Background(), 1)
	assert.Nil(t, movie)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
}

func TestMovieRepository_FindAllInInsertionOrder(t *testing.T) {
	repo := repository.NewMovieRepository(testutil.NewDatabase(t))
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	batch := []models.Movie{
		{Title: "头号玩家 Ready Player One (2018)"},
		{Title: "湮灭 Annihilation (2018)"},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	require.NoError(t, repo.Create(ctx, &models.Movie{Title: "Third"}))

	movies, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "头号玩家 Ready Player One (2018)", movies[0].Title)
	assert.Equal(t, "湮灭 Annihilation (2018)", movies[1].Title)
	assert.Equal(t, "Third", movies[2].Title)
	assert.Equal(t, batch[0].ID, movies[0].ID)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestMovieRepository_Delete(t *testing.T) {
	repo := repository.NewMovieRepository(testutil.NewDatabase(t))
	ctx := context.Background()

	movie := &models.Movie{Title: "Annihilation"}
	require.NoError(t, repo.Create(ctx, movie))

	require.NoError(t, repo.Delete(ctx, movie.ID))
	assert.ErrorIs(t, repo.Delete(ctx, movie.ID), repository.ErrMovieNotFound)

	_, err := repo.FindByID(ctx, movie.ID)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
}

func TestMovieRepository_CreateBatchEmpty(t *testing.T) {
	repo := repository.NewMovieRepository(testutil.NewDatabase(t))
	require.NoError(t, repo.CreateBatch(context.Background(), nil))
}
