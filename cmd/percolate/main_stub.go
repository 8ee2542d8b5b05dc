//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of percolate requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/percolate` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless estimate of the percolation threshold use ./cmd/percolation-sweep.")
	os.Exit(2)
}
