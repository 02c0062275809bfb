package handlers

import (
	"context"
	"html/template"
	"time"

	"movie-demo/internal/config"
	"movie-demo/internal/movieitem"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const csrItemPath = "/movies/csr/item"

// PageHandler serves the server-rendered and client-loaded movie pages.
// Both embed the same movie display component.
type PageHandler struct {
	fetcher movieitem.Fetcher
	opts    movieitem.Options
	timeout time.Duration
	logger  *logrus.Logger
}

func NewPageHandler(fetcher movieitem.Fetcher, cfg config.PageConfig, logger *logrus.Logger) *PageHandler {
	timeout := cfg.RenderTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &PageHandler{
		fetcher: fetcher,
		opts: movieitem.Options{
			MovieID:    cfg.MovieID,
			ShowRating: cfg.ShowRating,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// SSR renders the page with the component already loaded.
func (h *PageHandler) SSR(c *fiber.Ctx) error {
	item, err := h.renderLoaded(c.UserContext())
	if err != nil {
		return err
	}

	return c.Render("movies/ssr", fiber.Map{
		"Title": "Movie (server rendered)",
		"Item":  item,
	}, "layouts/main")
}

// CSR renders the page shell with the component in its unloaded state. The
// browser then swaps in the fragment served by CSRItem.
func (h *PageHandler) CSR(c *fiber.Ctx) error {
	item, err := movieitem.New(h.fetcher, h.opts, h.logger).RenderHTML()
	if err != nil {
		return err
	}

	return c.Render("movies/csr", fiber.Map{
		"Title":   "Movie (client rendered)",
		"Item":    item,
		"ItemURL": csrItemPath,
	}, "layouts/main")
}

// CSRItem returns the component fragment after its fetch.
func (h *PageHandler) CSRItem(c *fiber.Ctx) error {
	item, err := h.renderLoaded(c.UserContext())
	if err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.SendString(string(item))
}

// renderLoaded mounts a fresh component, waits for its fetch within the
// render timeout and tears it down. A timeout renders the loading state.
func (h *PageHandler) renderLoaded(ctx context.Context) (template.HTML, error) {
	component := movieitem.New(h.fetcher, h.opts, h.logger)
	if err := component.Mount(ctx); err != nil {
		return "", err
	}
	defer component.Unmount()

	waitCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	state, err := component.Wait(waitCtx)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", h.opts.MovieID).Warn("Movie not loaded before render timeout")
	}
	h.logger.WithFields(logrus.Fields{
		"movie_id": h.opts.MovieID,
		"phase":    state.Phase.String(),
	}).Debug("Rendered movie item")

	return component.RenderHTML()
}
