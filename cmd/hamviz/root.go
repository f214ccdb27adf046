package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamviz/session"
)

const defaultDelay = 400 * time.Millisecond

func rootCmd() *cobra.Command {
	var (
		preset string
		file   string
		delay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "hamviz",
		Short: "Watch a Hamiltonian-cycle backtracking search, step by step",
		Long: `hamviz animates the classic Hamiltonian-cycle backtracking search
over a small undirected graph. The search runs cooperatively: pause it,
single-step it, retune its pacing, or cancel it at any moment — the
trace it emits is deterministic and identical on every rerun.

Graphs come from a builder preset (--preset) or a YAML file (--file):

    vertices: [1, 2, 3, 4]
    edges:
      - [1, 2]
      - [2, 3]
      - [3, 4]
      - [4, 1]`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(preset, file)
			if err != nil {
				return err
			}

			sess := session.New(g)
			sess.SetDelay(delay)

			m, err := newModel(sess, delay)
			if err != nil {
				return fmt.Errorf("start search: %w", err)
			}
			if _, err = tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "wheel:6",
		"graph preset: cycle:N, path:N, star:N, wheel:N, complete:N, bipartite:MxN")
	cmd.Flags().StringVarP(&file, "file", "f", "",
		"YAML graph file (overrides --preset)")
	cmd.Flags().DurationVarP(&delay, "delay", "d", defaultDelay,
		"pacing interval between search steps")

	return cmd
}
