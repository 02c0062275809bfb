// Package movieitem implements the movie display component: it fetches a
// single movie once per mount and renders a loading, loaded or failed view.
package movieitem

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultMovieID is the record the component shows when none is configured.
const DefaultMovieID uint = 1

// ErrAlreadyMounted is returned by Mount on a component that was mounted before.
var ErrAlreadyMounted = errors.New("movieitem: component already mounted")

// Movie is the component's copy of a record. Only these fields are consumed;
// anything else in the payload is ignored.
type Movie struct {
	CoverImg string `json:"cover_img"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
}

type Options struct {
	MovieID    uint
	ShowRating bool
}

type Component struct {
	fetcher Fetcher
	opts    Options
	logger  *logrus.Logger

	mu      sync.Mutex
	state   State
	mounted bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(fetcher Fetcher, opts Options, logger *logrus.Logger) *Component {
	if opts.MovieID == 0 {
		opts.MovieID = DefaultMovieID
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Component{
		fetcher: fetcher,
		opts:    opts,
		logger:  logger,
		state:   State{Phase: Unloaded},
	}
}

// Mount starts the one fetch this component will ever perform. The fetch
// runs until it completes, ctx is done, or Unmount is called.
func (c *Component) Mount(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		return ErrAlreadyMounted
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	c.mounted = true
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.load(fetchCtx, cancel, c.done)
	return nil
}

func (c *Component) load(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	movie, err := c.fetcher.FetchMovie(ctx, c.opts.MovieID)
	if err == nil && movie == nil {
		err = errNoMovie
	}
	if !c.transition(Result{Movie: movie, Err: err}) {
		c.logger.WithField("movie_id", c.opts.MovieID).Debug("Discarded fetch result after unmount")
		return
	}
	if err != nil {
		c.logger.WithError(err).WithField("movie_id", c.opts.MovieID).Warn("Failed to load movie")
	}
}

// transition applies a fetch result. It reports false when the result was
// dropped because the component was unmounted first.
func (c *Component) transition(r Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return false
	}
	c.state = c.state.apply(r)
	return true
}

// Unmount cancels an in-flight fetch. Results that arrive afterwards are
// discarded.
func (c *Component) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return
	}
	c.mounted = false
	if c.cancel != nil {
		c.cancel()
	}
}

// Wait blocks until the fetch finished or ctx is done and returns the state
// at that point.
func (c *Component) Wait(ctx context.Context) (State, error) {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return c.State(), nil
	}

	select {
	case <-done:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}

func (c *Component) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Render writes the view for the current state.
func (c *Component) Render(w io.Writer) error {
	return render(w, c.State(), c.opts)
}

func (c *Component) RenderHTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
