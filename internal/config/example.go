package config

import _ "embed"

// ExampleStyle is a sample style file with a few entries,
// written by the terminal preview on --init
//
//go:embed example.toml
var ExampleStyle []byte
