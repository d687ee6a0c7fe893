// Package main provides the sqlfix CLI.
package main

import (
	"github.com/leapstack-labs/sqlfix/internal/cli"
)

func main() {
	cli.Execute()
}
