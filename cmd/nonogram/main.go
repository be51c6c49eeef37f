package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"nonogram/internal/display"
	"nonogram/internal/nonogram"
	"nonogram/internal/parser"
	"nonogram/pkg/config"
	"nonogram/pkg/constants"
)

func main() {
	themeFlag := display.NewThemeFlag(display.Unicode)
	var noColor bool
	var maxSteps int

	root := &cobra.Command{
		Use:   "nonogram",
		Short: "Read nonogram puzzles from stdin, one per line, and dispense line-inference hints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(themeFlag.Theme.String(), noColor, maxSteps)
			if err != nil {
				return err
			}
			display.ApplyColorPolicy(themeFlag.Theme, cfg.NoColor)
			run(cfg, themeFlag.Theme)
			return nil
		},
	}
	root.Flags().VarP(themeFlag, "theme", "t", "display theme: ascii, unicode, or brief")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color even for ascii/unicode themes")
	root.Flags().IntVar(&maxSteps, "max-steps", constants.MaxTotalSteps, "safety-net cap on scheduler steps per puzzle")

	if err := root.Execute(); err != nil {
		log.Fatalf("nonogram: %v", err)
	}
}

// run reads one puzzle per stdin line until EOF, printing the solve
// trace and final grid for each, mirroring cmd/server/main.go's
// lifecycle logging shape adapted to a stdin read-loop.
func run(cfg *config.Config, theme display.Theme) {
	log.Printf("Reading puzzles from stdin (theme=%s)...", cfg.Theme)

	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := solveOne(line, cfg, theme); err != nil {
			log.Printf("line %d: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
	log.Println("Done.")
}

func solveOne(line string, cfg *config.Config, theme display.Theme) error {
	puzzle, err := parser.Parse(line)
	if err != nil {
		return err
	}

	registry := nonogram.NewPassRegistry()
	solver := nonogram.NewSolver(puzzle, registry)
	solver.SetMaxSteps(cfg.MaxSteps)

	status, reports, err := solver.Run()
	if err != nil {
		fmt.Println(display.Render(puzzle, theme))
		return err
	}

	if theme != display.Brief {
		for _, r := range reports {
			if len(r.Hints) == 0 {
				continue
			}
			fmt.Printf("step %d: %s on %s: %v\n", r.StepIndex, r.Pass, r.Axis, r.Hints)
		}
	}
	fmt.Println(display.Render(puzzle, theme))
	fmt.Printf("status: %s\n", status)
	return nil
}
