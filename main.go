// main package for pitgate command-line tool
// Package main is the entry point for the pitgate CLI.
package main

import "github.com/akhilbojedla/pitmutation-plugin/cmd"

func main() {
	cmd.Execute()
}
