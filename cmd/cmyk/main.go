// Package main provides the cmyk CLI.
package main

import "github.com/mesh-intelligence/cmyk/internal/cli"

func main() {
	cli.Execute()
}
