package main

import (
	"fmt"
	"strconv"

	"movie-demo/internal/config"
	"movie-demo/internal/database"
	"movie-demo/internal/repository"
	"movie-demo/internal/seed"
	"movie-demo/internal/services"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// storeOpener returns a movie service and a function that releases it.
type storeOpener func(log *logrus.Logger) (services.MovieService, func() error, error)

// openConfiguredStore connects to the PostgreSQL store described by the
// environment.
func openConfiguredStore(log *logrus.Logger) (services.MovieService, func() error, error) {
	cfg := config.Load()
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	return services.NewMovieService(repository.NewMovieRepository(db), log), db.Close, nil
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample movies when the store is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := seed.Movies()
			if err != nil {
				return err
			}

			svc, release, err := root.openStore(root.logger)
			if err != nil {
				return err
			}
			defer release()

			inserted, err := svc.SeedMovies(cmd.Context(), movies)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d movies\n", inserted)
			return nil
		},
	}
}

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored movies in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := root.openStore(root.logger)
			if err != nil {
				return err
			}
			defer release()

			movies, err := svc.ListMovies(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("ID", "Title", "Cover")
			for _, m := range movies {
				if err := table.Append([]string{strconv.FormatUint(uint64(m.ID), 10), m.Title, m.CoverImg}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
