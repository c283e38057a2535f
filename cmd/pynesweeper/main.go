package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pocc/pynesweeper/internal/board"
	"github.com/pocc/pynesweeper/internal/config"
	"github.com/pocc/pynesweeper/internal/tui"
)

var (
	log = logrus.New()

	sideLen  int
	numMines int
	seed     uint64
	logPath  string
)

func init() {
	const (
		sideUsage = "board side length (for an NxN board, N)"
		mineUsage = "number of mines"
	)
	flag.IntVar(&sideLen, "side", 0, sideUsage)
	flag.IntVar(&sideLen, "n", 0, sideUsage+" (shorthand)")
	flag.IntVar(&numMines, "mines", 0, mineUsage)
	flag.IntVar(&numMines, "m", 0, mineUsage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "mine placement seed, 0 picks one at random")
	flag.StringVar(&logPath, "log", "", "log file path (default $PYNESWEEPER_LOG or ./pynesweeper.log)")
}

const banner = `
    ~~~ Welcome to Pynesweeper! ~~~

Beginner:     8x8 board with 10 mines
Intermediate: 16x16 board with 40 mines
Expert:       24x24 board with 99 mines
`

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, errors.New("invalid integers entered")
	}
	return n, nil
}

// resolveParams prefers flags, then PYNESWEEPER_OPTS, then asks.
func resolveParams(in io.Reader, out io.Writer) (config.GameParams, error) {
	params := config.GameParams{SideLen: sideLen, NumMines: numMines, Seed: seed}

	if params.SideLen == 0 || params.NumMines == 0 {
		envParams, ok, err := config.ParamsFromEnv()
		if err != nil {
			return params, fmt.Errorf("bad %s: %w", config.OptsEnv, err)
		}
		if ok {
			if params.SideLen == 0 {
				params.SideLen = envParams.SideLen
			}
			if params.NumMines == 0 {
				params.NumMines = envParams.NumMines
			}
			if params.Seed == 0 {
				params.Seed = envParams.Seed
			}
		}
	}

	if params.SideLen == 0 || params.NumMines == 0 {
		scanner := bufio.NewScanner(in)
		fmt.Fprintf(out, "%s\n", banner)
		if params.SideLen == 0 {
			n, err := promptInt(scanner, out, "For an NxN board, what is N? ")
			if err != nil {
				return params, err
			}
			params.SideLen = n
		}
		if params.NumMines == 0 {
			n, err := promptInt(scanner, out, "How many mines? ")
			if err != nil {
				return params, err
			}
			params.NumMines = n
		}
	}

	return params, nil
}

func play(b *board.Board) error {
	presenter := tui.NewPresenter(os.Stdout, b)
	moves := tui.NewMoveReader(os.Stdin, os.Stdout, b.SideLen())

	if err := presenter.Draw(); err != nil {
		return err
	}
	for !b.Status().Terminal() {
		row, col, err := moves.Next()
		if errors.Is(err, io.EOF) {
			log.Info("input closed, leaving the game")
			return nil
		}
		if err != nil {
			return err
		}
		if err := b.Reveal(row, col); err != nil {
			// the reader validates ranges, so this is a bug
			log.WithField("error", err).Warn("reader passed a bad move")
			continue
		}
		log.WithFields(logrus.Fields{
			"row":    row,
			"col":    col,
			"moves":  b.MovesMade(),
			"status": b.Status().String(),
		}).Debug("move applied")
		if err := presenter.Draw(); err != nil {
			return err
		}
	}
	log.WithFields(logrus.Fields{
		"status": b.Status().String(),
		"moves":  b.MovesMade(),
	}).Info("game finished")
	return nil
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if logPath == "" {
		logPath = config.LogPath()
	}
	logger, err := config.NewLogger(logPath)
	if err != nil {
		fail("unable to open log file " + logPath + ": " + err.Error())
	}
	log = logger

	params, err := resolveParams(os.Stdin, os.Stdout)
	if err != nil {
		fail(err.Error())
	}

	b, err := board.New(params.SideLen, params.NumMines, createRand(params.Seed))
	if err != nil {
		log.WithField("error", err).Error("refusing board config")
		fail(err.Error())
	}

	log.WithFields(logrus.Fields{
		"side_len":  params.SideLen,
		"num_mines": params.NumMines,
		"seed":      params.Seed,
	}).Info("starting game")

	/*
	 * The prompt loop blocks in an uncancellable stdin read, so it
	 * runs in its own goroutine and main selects between its result
	 * and the signal context.
	 */
	errCh := make(chan error, 1)
	go func() {
		errCh <- play(b)
	}()

	select {
	case <-mainCtx.Done():
		fmt.Println()
		log.Info("interrupted")
	case err := <-errCh:
		if err != nil {
			log.WithField("error", err).Error("game loop failed")
			fail(err.Error())
		}
	}
}
