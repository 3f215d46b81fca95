package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-admin-dashboard/api"
	"github.com/jrsteele09/go-admin-dashboard/internal/config"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/jrsteele09/go-admin-dashboard/session/filestore"
	"github.com/jrsteele09/go-admin-dashboard/session/redisstore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %s\n", err)
	}
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)

	if len(args) == 0 {
		displayAppname(c.GetAppName())
		usage(os.Stdout)
		return nil
	}

	store, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	creds := session.NewCredentials(store)
	prefs := session.NewPreferences(store)
	cmd := &commands{creds: creds, prefs: prefs, out: os.Stdout, errOut: os.Stderr}
	cmd.client = api.New(c, creds, prefs, api.WithNotifier(api.NotifierFunc(cmd.notify)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.dispatch(ctx, args[0], args[1:])
}

func setupLogging(c config.EnvConfig) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.GetEnv() != config.EnvProduction {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// openStore returns the configured session store and a func releasing it.
func openStore(c config.StoreConfig) (session.Store, func(), error) {
	switch c.GetStoreBackend() {
	case config.StoreBackendRedis:
		s, err := redisstore.Dial(c.GetRedisAddr(), c.GetRedisPassword(), c.GetRedisDB())
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis session store: %w", err)
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Err(err).Msg("Closing redis session store")
			}
		}, nil
	case config.StoreBackendFile:
		s, err := filestore.New(c.GetDataFolder())
		if err != nil {
			return nil, nil, fmt.Errorf("opening file session store: %w", err)
		}
		log.Debug().Str("path", s.Path()).Msg("Using file session store")
		return s, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", c.GetStoreBackend())
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: dashboard <command> [flags]

Commands:
  register -name NAME -phone PHONE    create an admin account and send an OTP
  login -phone PHONE                  send an OTP to an existing account
  verify -otp CODE [-phone PHONE]     confirm the OTP and sign in
  products                            list your products
  add-product [flags]                 create a product
  update-product -id ID [flags]       replace a product
  delete-product -id ID               delete a product
  orders                              list orders containing your products
  auction -product ID                 show the auction for a product
  remove-auction -product ID          remove the auction for a product
  lang [en|ar]                        show, set, or toggle the UI language
  status                              show the current session
  logout                              forget the session
`)
}
