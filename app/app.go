package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chrisprideC9/shopping-scraper-graphs/config"
	httpapi "github.com/chrisprideC9/shopping-scraper-graphs/internal/api/http"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/report"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	rep  *report.Engine
	c    *config.Config
	once sync.Once
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start connects to the store and starts the API server
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting shopping scraper graphs",
		slog.String("driver", a.c.Store.Driver),
	)

	db, err := store.New(ctx, a.c.Store)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to store",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	a.rep = report.New(&a.c.Report, a.db, slog.Default())

	a.hs = httpapi.New(&a.c.HTTP, a.rep, a.c.Report.DefaultDays, slog.Default())
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		a.db.Close()
		return err
	}

	go func() {
		<-a.hs.Done()
		a.stopOnce()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown",
				slog.String("err", err.Error()),
			)
		}
		<-a.hs.Done()
	}
	a.stopOnce()
}

func (a *App) stopOnce() {
	a.once.Do(func() {
		if a.db != nil {
			a.db.Close()
		}
		close(a.done)
	})
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
