// Command crossword solves the 39-constraint side-7 hex-grid regex
// crossword in puzzle, printing one progress line per pattern after
// each round until the propagation loop reaches a fixed point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/brownan/regescrossword/crossword"
	"github.com/brownan/regescrossword/hexgrid"
	"github.com/brownan/regescrossword/letterset"
	"github.com/brownan/regescrossword/puzzle"
)

var (
	colorMode = flag.String("color", "auto", "progress output color: auto, always, or never")
	maxRounds = flag.Int("max-rounds", 0, "stop after this many rounds even if not converged (0 = no extra cap)")
	quiet     = flag.Bool("quiet", false, "suppress per-round output; print only the final board")
	boardSize = flag.Int("board-size", puzzle.Side, "hexagon side length; sizes other than the puzzle's native 7 use an all-\".*\" board")
)

func main() {
	flag.Parse()
	applyColorMode(*colorMode)

	alphabet := letterset.Of(puzzle.Alphabet)
	grid := hexgrid.NewGrid(*boardSize, alphabet)

	l2r, ur2ll, lr2ul := patternsFor(*boardSize)
	driver, err := buildDriver(grid, alphabet, l2r, ur2ll, lr2ul)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	round := 0
	err = driver.Run(ctx, func(r int, d *crossword.Driver) {
		round = r
		if !*quiet {
			printRound(r, d)
		}
		if *maxRounds > 0 && r >= *maxRounds {
			stop()
		}
	})
	if err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, "crossword:", err)
		os.Exit(1)
	}

	if *quiet {
		printRound(round, driver)
	}
	if err == context.Canceled {
		fmt.Printf("\ninterrupted after %d rounds\n", round)
	} else {
		fmt.Printf("\nfixed point reached after %d rounds\n", round)
	}
}

func patternsFor(side int) (l2r, ur2ll, lr2ul []string) {
	if side == puzzle.Side {
		return puzzle.L2R[:], puzzle.UR2LL[:], puzzle.LR2UL[:]
	}
	return puzzle.Blank(side)
}

func buildDriver(grid *hexgrid.Grid, alphabet letterset.Set, l2r, ur2ll, lr2ul []string) (*crossword.Driver, error) {
	return crossword.NewDriver(alphabet,
		lineSpecs(l2r, grid.TraverseL2R),
		lineSpecs(ur2ll, grid.TraverseUR2LL),
		lineSpecs(lr2ul, grid.TraverseLR2UL),
	)
}

func lineSpecs(patterns []string, cells func(i int) []*hexgrid.Cell) []crossword.LineSpec {
	specs := make([]crossword.LineSpec, len(patterns))
	for i, p := range patterns {
		specs[i] = crossword.NewLineSpec(p, cells(i))
	}
	return specs
}

var solvedColor = color.New(color.FgGreen)

func printRound(round int, d *crossword.Driver) {
	fmt.Printf("\nIteration %d\n", round)
	for _, b := range d.Bindings {
		line := crossword.Line(b)
		fmt.Printf("%-25s ", b.Pattern)
		if solved(line) {
			solvedColor.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}

func solved(line string) bool {
	for _, r := range line {
		if r == '_' {
			return false
		}
	}
	return true
}

func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		// color.NoColor already defaults to the right thing based on
		// whether stdout is a terminal; nothing to do.
	default:
		fmt.Fprintf(os.Stderr, "crossword: unknown -color value %q (want auto, always, or never)\n", mode)
		os.Exit(2)
	}
}
