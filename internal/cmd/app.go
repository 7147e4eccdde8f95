package cmd

import (
	"context"
	"fmt"

	"github.com/maartenv/kampeer/internal/api"
	"github.com/maartenv/kampeer/internal/config"
	"github.com/maartenv/kampeer/internal/credstore"
	kerrors "github.com/maartenv/kampeer/internal/errors"
	"github.com/maartenv/kampeer/internal/guard"
	"github.com/maartenv/kampeer/internal/log"
	"github.com/maartenv/kampeer/internal/session"
)

// App wires the client together: configuration, the credential store, the
// API transport with its hooks, and the session store. It is built once per
// invocation, before any command's guard check runs.
type App struct {
	Config  config.Config
	Creds   *credstore.Store
	Client  *api.Client
	Session *session.Store
	Logger  *log.Logger
}

var app *App

// getApp returns the process-wide app, building it on first use. The session
// is rehydrated from stored credentials (and a stored token with no cached
// user record triggers a profile refetch) before anything navigates.
func getApp() (*App, error) {
	if app != nil {
		return app, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.DefaultLogger()
	if !verbose && cfg.LogLevel != "" {
		logger = log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel), Format: log.FormatText})
		log.SetDefaultLogger(logger)
	}

	creds := credstore.New(cfg.StateDir)

	client := api.NewClient(cfg.APIBaseURL).
		Use(api.BearerToken(creds), api.RequestID()).
		UseResponse(api.Unauthorized())

	sess := session.New(client, creds, logger)
	sess.InitializeAuth()
	sess.Recover(context.Background())

	app = &App{
		Config:  cfg,
		Creds:   creds,
		Client:  client,
		Session: sess,
		Logger:  logger,
	}
	return app, nil
}

// runRoute is the CLI's navigation: it evaluates the authorization guard for
// the command's route and either runs the handler or lands the user
// somewhere else, exactly like the browser client's pre-navigation hook.
func (a *App) runRoute(ctx context.Context, route guard.Route, fn func(ctx context.Context) error) error {
	decision := guard.Evaluate(route, a.Session.Snapshot())
	if !decision.Allowed {
		return a.redirect(route, decision)
	}

	err := fn(ctx)
	if a.Session.HandleUnauthenticated(err) {
		// The backend rejected the stored credential mid-command; the
		// coordinator already tore the session down.
		return kerrors.NewSessionExpiredError()
	}
	return err
}

// redirect translates a guard redirect into CLI behavior: the login screen
// becomes an actionable error, the home screen a notice.
func (a *App) redirect(route guard.Route, decision guard.Decision) error {
	switch decision.Redirect {
	case guard.LoginPath:
		return kerrors.NewNotLoggedInError()
	case guard.HomePath:
		if route.RequiresOwner {
			return kerrors.NewOwnerOnlyError()
		}
		snap := a.Session.Snapshot()
		if snap.User != nil {
			fmt.Printf("Already logged in as %s.\n", snap.User.Name)
		} else {
			fmt.Println("Already logged in.")
		}
		return nil
	default:
		return fmt.Errorf("navigation redirected to %s", decision.Redirect)
	}
}
