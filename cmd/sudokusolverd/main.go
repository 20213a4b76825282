// Command sudokusolverd runs the sudoku solving service: a JSON
// API over the solver, backed by the result cache and the solve
// history.
package main

import (
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/CorruptedArk/sudoku-solver-go/logger"
	"github.com/CorruptedArk/sudoku-solver-go/storage"
)

var log zerolog.Logger

func main() {
	if os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log = logger.Logger()

	// establish store connections
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Error().Err(err).Msg("couldn't connect to storage")
		shutdown(startupFailureShutdown)
	}
	defer storage.Close()

	// catch signals
	shutdownOnSignal()

	// serve
	http.HandleFunc("/api/solve", recoverWrap(solveHandler))
	http.HandleFunc("/api/samples", recoverWrap(samplesHandler))
	http.HandleFunc("/api/solves", recoverWrap(solvesHandler))

	// Heroku-style port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Info().Str("cache", cacheId).Str("database", databaseId).Str("addr", port).Msg("listening")
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Error().Err(err).Msg("web server failed")
		shutdown(listenerFailureShutdown)
	}
}

/*

coordinate shutdown across goroutines and top-level server

*/

type shutdownCause int

const (
	unknownShutdown shutdownCause = iota
	startupFailureShutdown
	caughtSignalShutdown
	listenerFailureShutdown
)

// shutdown: process exit with logging.
func shutdown(reason shutdownCause) {
	storage.Close()

	// log reason for shutdown and exit
	switch reason {
	case unknownShutdown:
		log.Info().Msg("exiting: normal shutdown")
		os.Exit(0)
	case startupFailureShutdown:
		log.Error().Msg("exiting: initialization failure")
		os.Exit(1)
	case caughtSignalShutdown:
		log.Info().Msg("exiting: caught signal")
		os.Exit(0)
	case listenerFailureShutdown:
		log.Error().Msg("exiting: web server failed")
		os.Exit(1)
	default:
		log.Error().Msg("exiting: unknown cause")
		os.Exit(1)
	}
}

// shutdownOnSignal: catch signals and exit.
func shutdownOnSignal() {
	// based on example in os.signal godoc
	c := make(chan os.Signal, 1)
	signal.Notify(c) // die on all signals

	go func() {
		s := <-c
		log.Info().Str("signal", s.String()).Msg("received OS-level signal")
		shutdown(caughtSignalShutdown)
	}()
}
