// sweeper plays the inference agent against freshly generated boards:
// a single traced game by default, or a concurrent batch with -games.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var (
	log = logrus.New()

	width   = flag.Int("width", 9, "board width")
	height  = flag.Int("height", 9, "board height")
	mineCnt = flag.Int("mines", 10, "mine count")
	games   = flag.Int("games", 1, "number of games to play")
	seed    = flag.Uint64("seed", 0, "rng seed (0 picks one at random)")
	verbose = flag.Bool("v", false, "log every move")
)

func playOne(params mines.GameParams, r *rand.Rand) (agent.Outcome, error) {
	x, y := r.IntN(params.Width), r.IntN(params.Height)
	state, err := mines.NewGame(&params, x, y, r)
	if err != nil {
		return agent.Lost, err
	}
	ag := agent.New(params.Width, params.Height, r)
	return ag.Play(state, 0)
}

func playTraced(params mines.GameParams, r *rand.Rand) error {
	x, y := r.IntN(params.Width), r.IntN(params.Height)
	state, err := mines.NewGame(&params, x, y, r)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"seed":  params.Seed(),
		"start": fmt.Sprintf("%d:%d", x, y),
	}).Info("game started")

	ag := agent.New(params.Width, params.Height, r)
	if err := ag.Observe(state); err != nil {
		return err
	}
	for !state.Won && !state.Dead {
		res, err := ag.Step(state)
		if err != nil {
			return err
		}
		if !res.Moved {
			log.Info("no move remains")
			break
		}
		log.WithFields(logrus.Fields{
			"move":  res.Move.String(),
			"flags": len(res.Flags),
			"known": ag.Mines().Len(),
		}).Info("agent move")
	}
	state.RevealMines()
	fmt.Print(state.PlayerGrid.ToString(state.Width))

	outcome := agent.Stalled
	if state.Won {
		outcome = agent.Won
	} else if state.Dead {
		outcome = agent.Lost
	}
	log.WithField("outcome", outcome.String()).Info("game over")
	return nil
}

func playBatch(params mines.GameParams, seed1, seed2 uint64) error {
	var won, lost, stalled atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := range *games {
		r := rand.New(rand.NewPCG(seed1, seed2+uint64(i)))
		g.Go(func() error {
			outcome, err := playOne(params, r)
			if err != nil {
				return err
			}
			switch outcome {
			case agent.Won:
				won.Add(1)
			case agent.Lost:
				lost.Add(1)
			default:
				stalled.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf(
		"%s: %d games, %d won (%.1f%%), %d lost, %d stalled\n",
		params.Seed(), *games, won.Load(),
		100*float64(won.Load())/float64(*games),
		lost.Load(), stalled.Load(),
	)
	return nil
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
		agent.Log = log
	}

	params := mines.GameParams{
		Width: *width, Height: *height, MineCount: *mineCnt,
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	seed1, seed2 := *seed, *seed+1
	if *seed == 0 {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}

	var err error
	if *games > 1 {
		err = playBatch(params, seed1, seed2)
	} else {
		err = playTraced(params, rand.New(rand.NewPCG(seed1, seed2)))
	}
	if err != nil {
		log.Fatal(err)
	}
}


