// Command hamviz is the reference rendering collaborator for the hamviz
// library: a terminal UI that drives an interruptible Hamiltonian-cycle
// search and animates its event stream.
//
// Usage:
//
//	hamviz --preset wheel:6 --delay 400ms
//	hamviz --file classroom.yaml
//
// Keys: space pause/resume · s step · c cancel · +/- pacing · r rerun · q quit.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
