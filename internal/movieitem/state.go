package movieitem

import (
	"errors"
	"fmt"
)

var errNoMovie = errors.New("movieitem: fetch returned no movie")

type Phase int

const (
	Unloaded Phase = iota
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Result is the outcome of the component's single fetch.
type Result struct {
	Movie *Movie
	Err   error
}

type State struct {
	Phase Phase
	Movie *Movie
	Err   error
}

// apply is the only way state changes. Loaded and Failed are terminal.
func (s State) apply(r Result) State {
	if s.Phase != Unloaded {
		return s
	}
	if r.Err != nil {
		return State{Phase: Failed, Err: r.Err}
	}
	if r.Movie == nil {
		return State{Phase: Failed, Err: errNoMovie}
	}
	m := *r.Movie
	return State{Phase: Loaded, Movie: &m}
}

func (s State) clone() State {
	if s.Movie != nil {
		m := *s.Movie
		s.Movie = &m
	}
	return s
}
