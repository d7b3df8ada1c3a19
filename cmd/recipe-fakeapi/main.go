package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/fakeapi"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "127.0.0.1:8000", "listen address")
	delay := flag.Duration("delay", 0, "latency added to every request")
	rps := flag.Float64("rps", 0, "global request rate limit (0 disables)")
	registerToken := flag.Bool("register-token", false, "return an access token from /auth/register")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)

	backend := fakeapi.New(fakeapi.Options{
		Delay:               *delay,
		RateLimit:           rate.Limit(*rps),
		Burst:               int(*rps) + 1,
		RegisterIssuesToken: *registerToken,
		Logger:              true,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           backend.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("fake recipe API listening on http://%s", *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "recipe-fakeapi: %v\n", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "recipe-fakeapi: shutdown: %v\n", err)
			return 1
		}
	}
	return 0
}
