package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/showcase/internal/server"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/showcase"
	"github.com/desertthunder/showcase/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the web front end until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	serverConfig := config.Server
	if cmd.IsSet("host") {
		serverConfig.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		serverConfig.Port = cmd.Int("port")
	}

	sc, closeDB, err := r.openShowcase(ctx, config)
	if err != nil {
		return err
	}
	defer closeDB()

	handler, err := r.newRouter(sc, config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", serverConfig.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", serverConfig.Addr(), err)
	}

	url := "http://" + ln.Addr().String() + "/"
	r.writePlain("Serving %s at %s\n", config.Site.Title, url)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	srv := server.NewServer(serverConfig.Addr(), handler, shared.WithLogger(r.logger, "component", "server"))
	return srv.Serve(ctx, ln)
}

// newRouter wires the web app and middleware stack around a mounted showcase.
func (r *Runner) newRouter(sc *showcase.Showcase, config *shared.Config) (http.Handler, error) {
	app, err := web.NewApp(sc, web.Options{Title: config.Site.Title, Footer: config.Site.Footer}, r.logger)
	if err != nil {
		return nil, err
	}

	router := server.NewBasicRouter()
	router.Use(
		server.RequestID(),
		server.Recover(r.logger),
		server.Logging(r.logger),
		server.RateLimit(server.NewLimiter(config.Server.RateLimit, config.Server.Burst)),
	)
	app.Register(router)

	return router, nil
}
