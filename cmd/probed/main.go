package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-probe/internal/decide"
)

var (
	log     = logrus.New()
	decoder = schema.NewDecoder()

	oracle decide.Oracle = decide.Gophersat{}

	addr    string
	logFile string
)

func init() {
	decoder.IgnoreUnknownKeys(true)

	flag.StringVar(&addr, "addr", defaultAddr(), "listen address")
	flag.StringVar(&logFile, "log-file", "", "write rotating JSON logs to this file")
}

func defaultAddr() string {
	if addr, ok := os.LookupEnv("PROBED_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up file logging: ", err)
	}
	log.AddHook(hook)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	setupLogging()

	server := &http.Server{
		Addr:    addr,
		Handler: buildHandler(),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
