// Package config collects everything the game reads from its
// environment: board parameters, mode switches and logging setup.
package config

import (
	"net/url"
	"os"

	"github.com/gorilla/schema"
)

// OptsEnv holds board parameters as a query string, e.g.
// "side_len=8&num_mines=10&seed=42".
const OptsEnv = "PYNESWEEPER_OPTS"

type GameParams struct {
	SideLen  int    `schema:"side_len,required"`
	NumMines int    `schema:"num_mines,required"`
	Seed     uint64 `schema:"seed"`
}

func DecodeGameParams(src map[string][]string) (GameParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var params GameParams
	err := dec.Decode(&params, src)
	return params, err
}

// ParamsFromEnv reads game parameters from OptsEnv. The second return
// value reports whether the variable was set at all; a set but
// malformed value is an error.
func ParamsFromEnv() (GameParams, bool, error) {
	opts, ok := os.LookupEnv(OptsEnv)
	if !ok {
		return GameParams{}, false, nil
	}
	values, err := url.ParseQuery(opts)
	if err != nil {
		return GameParams{}, true, err
	}
	params, err := DecodeGameParams(values)
	return params, true, err
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
