package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"movie-demo/internal/cache"
	"movie-demo/internal/config"
	"movie-demo/internal/models"
	"movie-demo/internal/movieitem"
	"movie-demo/internal/repository"
	"movie-demo/internal/seed"
	"movie-demo/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache follows the MovieCache contract: Set only fills empty keys and
// Delete leaves a tombstone.
type fakeCache struct {
	entries    map[uint]models.Movie
	tombstones map[uint]bool
	gets       int
	hits       int
	deletes    []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[uint]models.Movie{}, tombstones: map[uint]bool{}}
}

func (c *fakeCache) Get(_ context.Context, id uint) (*models.Movie, bool) {
	c.gets++
	m, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	c.hits++
	return &m, true
}

func (c *fakeCache) Set(_ context.Context, movie *models.Movie) {
	if _, ok := c.entries[movie.ID]; ok || c.tombstones[movie.ID] {
		return
	}
	c.entries[movie.ID] = *movie
}

func (c *fakeCache) Delete(_ context.Context, id uint) {
	delete(c.entries, id)
	c.tombstones[id] = true
	c.deletes = append(c.deletes, id)
}

type fakeCovers struct {
	owned   string
	deleted []string
	err     error
}

func (f *fakeCovers) OwnsURL(coverURL string) bool {
	return coverURL == f.owned
}

func (f *fakeCovers) DeleteByURL(_ context.Context, coverURL string) error {
	f.deleted = append(f.deleted, coverURL)
	return f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(t *testing.T) (*movieService, repository.MovieRepository) {
	t.Helper()
	repo := repository.NewMovieRepository(testutil.NewDatabase(t))
	return NewMovieService(repo, quietLogger()).(*movieService), repo
}

func TestSeedMovies(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	movies, err := seed.Movies()
	require.NoError(t, err)

	inserted, err := svc.SeedMovies(ctx, movies)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Zero(t, movies[0].ID, "caller's slice is not modified")

	listed, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, movies[0].Title, listed[0].Title)
	assert.Equal(t, movies[1].Title, listed[1].Title)
	assert.Less(t, listed[0].ID, listed[1].ID)

	inserted, err = svc.SeedMovies(ctx, movies)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	listed, err = svc.ListMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestGetMovieByID_UsesCache(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	memo := newFakeCache()
	svc.SetCache(memo)

	movie := &models.Movie{CoverImg: "https://x/y.webp", Title: "Ready Player One", Desc: "..."}
	require.NoError(t, repo.Create(ctx, movie))

	got, err := svc.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ready Player One", got.Title)
	assert.Zero(t, memo.hits)
	assert.Contains(t, memo.entries, movie.ID)

	got, err = svc.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ready Player One", got.Title)
	assert.Equal(t, 1, memo.hits)
}

func TestGetMovieByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	memo := newFakeCache()
	svc.SetCache(memo)

	_, err := svc.GetMovieByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	assert.Empty(t, memo.entries)
}

func TestCreateMovie(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.CreateMovie(ctx, &models.Movie{Desc: "no title"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	movie := &models.Movie{ID: 99, Title: "湮灭 Annihilation (2018)"}
	require.NoError(t, svc.CreateMovie(ctx, movie))
	assert.NotZero(t, movie.ID)
	assert.NotEqual(t, uint(99), movie.ID, "ids are assigned by the store")

	got, err := svc.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "湮灭 Annihilation (2018)", got.Title)
}

func TestDeleteMovie(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	memo := newFakeCache()
	covers := &fakeCovers{owned: "http://localhost:9000/covers/poster_1234abcd.webp", err: errors.New("unreachable")}
	svc.SetCache(memo)
	svc.SetCoverStore(covers)

	hosted := &models.Movie{Title: "Hosted", CoverImg: covers.owned}
	external := &models.Movie{Title: "External", CoverImg: "https://img1.doubanio.com/p.webp"}
	require.NoError(t, repo.Create(ctx, hosted))
	require.NoError(t, repo.Create(ctx, external))

	// Cover cleanup failures are logged, not returned.
	require.NoError(t, svc.DeleteMovie(ctx, hosted.ID))
	require.NoError(t, svc.DeleteMovie(ctx, external.ID))

	assert.Equal(t, []string{covers.owned}, covers.deleted)
	assert.Equal(t, []uint{hosted.ID, external.ID}, memo.deletes)

	err := svc.DeleteMovie(ctx, hosted.ID)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUpdateMovie(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	memo := newFakeCache()
	covers := &fakeCovers{owned: "http://localhost:9000/covers/old_1234abcd.webp"}
	svc.SetCache(memo)
	svc.SetCoverStore(covers)

	movie := &models.Movie{Title: "Ready Player One", CoverImg: covers.owned, Desc: "old"}
	require.NoError(t, repo.Create(ctx, movie))
	_, err := svc.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)

	update := &models.Movie{ID: 77, Title: "头号玩家 Ready Player One (2018)", CoverImg: "https://x/new.webp", Desc: "new"}
	require.NoError(t, svc.UpdateMovie(ctx, movie.ID, update))
	assert.Equal(t, movie.ID, update.ID, "the path id wins over the body id")

	stored, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "头号玩家 Ready Player One (2018)", stored.Title)
	assert.Equal(t, "https://x/new.webp", stored.CoverImg)
	assert.Equal(t, "new", stored.Desc)
	assert.WithinDuration(t, movie.CreatedAt, stored.CreatedAt, time.Second)

	assert.Equal(t, []uint{movie.ID}, memo.deletes)
	assert.NotContains(t, memo.entries, movie.ID)
	assert.Equal(t, []string{covers.owned}, covers.deleted)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpdateMovie_KeepsUnchangedCover(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	covers := &fakeCovers{owned: "http://localhost:9000/covers/keep_1234abcd.webp"}
	svc.SetCoverStore(covers)

	movie := &models.Movie{Title: "Arrival", CoverImg: covers.owned}
	require.NoError(t, repo.Create(ctx, movie))

	require.NoError(t, svc.UpdateMovie(ctx, movie.ID, &models.Movie{Title: "Arrival (2016)", CoverImg: covers.owned}))
	assert.Empty(t, covers.deleted)
}

func TestUpdateMovie_Errors(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	movie := &models.Movie{Title: "Arrival"}
	require.NoError(t, repo.Create(ctx, movie))

	err := svc.UpdateMovie(ctx, movie.ID, &models.Movie{Desc: "no title"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	err = svc.UpdateMovie(ctx, movie.ID+1, &models.Movie{Title: "ghost"})
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

// gatedCache holds the first Set until released, so a test can run a write
// between a reader's store lookup and its cache fill.
type gatedCache struct {
	*cache.MovieCache
	once    sync.Once
	reached chan struct{}
	release chan struct{}
}

func (g *gatedCache) Set(ctx context.Context, movie *models.Movie) {
	first := false
	g.once.Do(func() {
		first = true
		close(g.reached)
	})
	if first {
		<-g.release
	}
	g.MovieCache.Set(ctx, movie)
}

func newGatedCache(t *testing.T) *gatedCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &gatedCache{
		MovieCache: cache.NewMovieCache(client, config.RedisConfig{Prefix: "test", TTL: time.Minute}, quietLogger()),
		reached:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func TestCache_ReaderRacingWriteDoesNotRestoreOldRow(t *testing.T) {
	tests := []struct {
		name   string
		write  func(svc *movieService, id uint) error
		verify func(t *testing.T, movie *models.Movie, err error)
	}{
		{
			name: "delete",
			write: func(svc *movieService, id uint) error {
				return svc.DeleteMovie(context.Background(), id)
			},
			verify: func(t *testing.T, movie *models.Movie, err error) {
				assert.ErrorIs(t, err, repository.ErrMovieNotFound)
				assert.Nil(t, movie)
			},
		},
		{
			name: "update",
			write: func(svc *movieService, id uint) error {
				return svc.UpdateMovie(context.Background(), id, &models.Movie{Title: "Renamed"})
			},
			verify: func(t *testing.T, movie *models.Movie, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Renamed", movie.Title)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			ctx := context.Background()
			gated := newGatedCache(t)
			svc.SetCache(gated)

			movie := &models.Movie{Title: "Doomed"}
			require.NoError(t, repo.Create(ctx, movie))

			readDone := make(chan error, 1)
			go func() {
				_, err := svc.GetMovieByID(ctx, movie.ID)
				readDone <- err
			}()

			<-gated.reached
			require.NoError(t, tt.write(svc, movie.ID))
			close(gated.release)
			require.NoError(t, <-readDone)

			got, err := svc.GetMovieByID(ctx, movie.ID)
			tt.verify(t, got, err)
		})
	}
}

func TestFetcher(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	movie := &models.Movie{CoverImg: "https://x/y.webp", Title: "Ready Player One", Desc: "desc"}
	require.NoError(t, repo.Create(ctx, movie))

	got, err := svc.Fetcher().FetchMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, &movieitem.Movie{CoverImg: "https://x/y.webp", Title: "Ready Player One", Desc: "desc"}, got)

	_, err = svc.Fetcher().FetchMovie(ctx, movie.ID+1)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
}
