package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/session"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // get state
	"o": 2, // open x y
	"f": 2, // flag x y
	"c": 2, // chord x y
	"a": 0, // one agent move
	"s": 0, // agent plays the game out
	"r": 0, // forfeit and reveal
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand runs one text command against a session the caller has
// already locked.
func executeCommand(s *session.Session, c string) error {
	parts := strings.Split(strings.TrimSpace(c), " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	over := s.State.Dead || s.State.Won

	switch parts[0] {
	case "g":
		return nil
	case "o", "f", "c":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if !s.State.ValidatePoint(x, y) {
			return errors.New("invalid square coordinates")
		}
		if over {
			return errors.New("game is over")
		}
		switch parts[0] {
		case "o":
			s.State.OpenCell(x, y)
		case "f":
			s.State.FlagCell(x, y)
			return nil
		case "c":
			s.State.ChordCell(x, y)
		}
		if s.State.Dead || s.State.Won {
			s.Finished()
			return nil
		}
		return s.Agent.Observe(s.State)
	case "a":
		if over {
			return errors.New("game is over")
		}
		if _, err := s.Agent.Step(s.State); err != nil {
			return err
		}
		if s.State.Dead || s.State.Won {
			s.Finished()
		}
		return nil
	case "s":
		if over {
			return errors.New("game is over")
		}
		if _, err := s.Agent.Play(s.State, 0); err != nil {
			return err
		}
		s.Finished()
		return nil
	case "r":
		s.State.Forfeit()
		s.Finished()
		return nil
	}
	return errors.New("invalid command")
}


