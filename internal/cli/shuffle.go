package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/puzzle"
)

// shuffleCommand creates the shuffle command, which prints a board reached
// by a random walk from the goal.
func (c *CLI) shuffleCommand() *cobra.Command {
	var (
		steps int
		size  int
		seed  uint64
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Generate a solvable board by random moves from the goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			logger.Debug("shuffling", "size", size, "steps", steps, "seed", seed)

			s, err := shuffleBoard(size, steps, seed)
			if err != nil {
				return err
			}
			tiles := joinTiles(s.Tiles())
			if quiet {
				fmt.Println(tiles)
				return nil
			}
			fmt.Println(boardView(s.Tiles(), puzzle.Goal(size).Tiles()))
			printKeyValue("Board", tiles)
			printKeyValue("Seed", fmt.Sprint(seed))
			printNewline()
			printNextStep("Solve it", "bestfirst solve --initial "+tiles)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 30, "number of random moves")
	cmd.Flags().IntVar(&size, "size", 3, "board side")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the tiles")

	return cmd
}

func shuffleBoard(size, steps int, seed uint64) (puzzle.State, error) {
	if size < 2 || size > errors.MaxBoardSide {
		return "", errors.New(errors.ErrCodeInvalidInput, "size must be between 2 and %d, got %d", errors.MaxBoardSide, size)
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	return puzzle.Shuffle(puzzle.Goal(size), steps, rng)
}
