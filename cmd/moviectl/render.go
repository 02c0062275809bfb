package main

import (
	"context"
	"fmt"
	"time"

	"movie-demo/internal/movieitem"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	server  string
	id      uint
	rating  bool
	timeout time.Duration
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Mount the movie display component against a server and print its HTML",
		Example: `  moviectl render --server http://localhost:8010 --id 1
  moviectl render --rating=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:8010", "base URL of the movie server")
	cmd.Flags().UintVar(&opts.id, "id", uint(movieitem.DefaultMovieID), "movie id to fetch")
	cmd.Flags().BoolVar(&opts.rating, "rating", true, "include the star rating widget")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "how long to wait for the fetch")
	return cmd
}

// runRender prints whatever state the component reached; a failed fetch is
// reported as an error after its view is printed.
func runRender(ctx context.Context, cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	fetcher := movieitem.NewHTTPFetcher(opts.server, opts.timeout)
	component := movieitem.New(fetcher, movieitem.Options{
		MovieID:    opts.id,
		ShowRating: opts.rating,
	}, root.logger)

	if err := component.Mount(ctx); err != nil {
		return err
	}
	defer component.Unmount()

	waitCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()
	state, waitErr := component.Wait(waitCtx)

	if err := component.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to render movie item: %w", err)
	}

	switch {
	case waitErr != nil:
		return fmt.Errorf("movie %d did not load: %w", opts.id, waitErr)
	case state.Phase == movieitem.Failed:
		return fmt.Errorf("movie %d failed to load: %w", opts.id, state.Err)
	}
	return nil
}
