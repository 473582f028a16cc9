package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/zombietrap/internal/registry"
	"github.com/vovakirdan/zombietrap/internal/statespace"
	"github.com/vovakirdan/zombietrap/internal/storage"
	"github.com/vovakirdan/zombietrap/internal/zombietrap"
	"github.com/vovakirdan/zombietrap/internal/zombietrap/levels"
)

var (
	flagSolveAll   bool
	flagSolveFiles []string
	flagSolveSave  bool
	flagSolveJobs  int
	flagSolveBoard bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [level]...",
	Short: "Enumerate the state space of one or more levels",
	Long: `Build the complete set of boards reachable from a level's start and
report the number of states, the best reachable score, the shortest moves
that reach it and the depth of the search.

Levels are solved concurrently (bounded by --jobs); each level gets its own
independent search.

Examples:
  zombietrap solve lvl01
  zombietrap solve lvl01 lvl03 --board
  zombietrap solve --all --jobs 4 --save
  zombietrap solve --file ./my-level.yaml`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveAll, "all", false, "Solve every registered level")
	solveCmd.Flags().StringSliceVar(&flagSolveFiles, "file", nil, "Solve a level file (repeatable)")
	solveCmd.Flags().BoolVar(&flagSolveSave, "save", false, "Record solve summaries in the database")
	solveCmd.Flags().IntVar(&flagSolveJobs, "jobs", 0, "Levels solved concurrently (0 = config value)")
	solveCmd.Flags().BoolVar(&flagSolveBoard, "board", false, "Print the best board")
}

// solveJob is one level to solve.
type solveJob struct {
	id     string
	title  string
	source string
	game   func() (*zombietrap.Game, error)
}

// solveResult is the outcome of one job.
type solveResult struct {
	job     solveJob
	initial *zombietrap.Game
	best    *zombietrap.Game
	summary statespace.Summary
}

func runSolve(cmd *cobra.Command, args []string) {
	jobs, err := collectSolveJobs(args)
	if err != nil {
		exitf("%v", err)
	}
	if len(jobs) == 0 {
		exitf("nothing to solve: pass level IDs, --all or --file")
	}

	workers := flagSolveJobs
	if workers <= 0 {
		workers = cfg.Solve.Jobs
	}

	results, err := solveAll(cmd.Context(), jobs, workers)
	if err != nil {
		exitf("%v", err)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printSolveResult(r, flagSolveBoard)
	}

	if flagSolveSave || cfg.Solve.Save {
		if err := saveSolutions(results); err != nil {
			exitf("saving solutions: %v", err)
		}
	}
}

// collectSolveJobs resolves command arguments into jobs.
func collectSolveJobs(args []string) ([]solveJob, error) {
	var jobs []solveJob

	ids := args
	if flagSolveAll {
		ids = nil
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
	}
	for _, id := range ids {
		info, ok := registry.Info(id)
		if !ok {
			return nil, fmt.Errorf("%w %q", registry.ErrUnknownLevel, id)
		}
		jobs = append(jobs, solveJob{
			id:     id,
			title:  info.Title,
			source: info.Source,
			game:   func() (*zombietrap.Game, error) { return registry.Create(id) },
		})
	}

	for _, path := range flagSolveFiles {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, solveJob{
			id:     lvl.ID,
			title:  lvl.Name,
			source: path,
			game:   lvl.NewGame,
		})
	}
	return jobs, nil
}

// solveAll runs jobs on at most workers goroutines. Results keep job order.
func solveAll(ctx context.Context, jobs []solveJob, workers int) ([]solveResult, error) {
	results := make([]solveResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := solveOne(job)
			if err != nil {
				return fmt.Errorf("level %s: %w", job.id, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// solveOne builds the state space of a single level.
func solveOne(job solveJob) (solveResult, error) {
	initial, err := job.game()
	if err != nil {
		return solveResult{}, err
	}

	log := logger.With("level", job.id)
	opts := []statespace.Option{statespace.WithLogger(log)}
	if every := cfg.Solve.ProgressEvery; every > 0 {
		opts = append(opts, statespace.WithOnDiscover(func(depth, count int) {
			if count%every == 0 {
				log.Info("exploring", "states", count, "depth", depth)
			}
		}))
	}

	space := statespace.New(initial, opts...)
	summary := space.Summary()
	log.Info("solved",
		"states", summary.States,
		"best_score", summary.BestScore,
		"moves", len(summary.BestMoves),
		"elapsed", summary.Elapsed,
	)

	return solveResult{
		job:     job,
		initial: initial,
		best:    space.BestState(),
		summary: summary,
	}, nil
}

var (
	solveTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	solveLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	solveValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	solveBoardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func printSolveResult(r solveResult, showBoard bool) {
	s := r.summary

	moves := statespace.FormatMoves(s.BestMoves)
	if moves == "" {
		moves = "(none)"
	}

	fmt.Println(solveTitleStyle.Render(fmt.Sprintf("%s  %s", r.job.id, r.job.title)))
	row := func(label, value string) {
		fmt.Println("  " + solveLabelStyle.Render(label) + solveValueStyle.Render(value))
	}
	row("states", fmt.Sprint(s.States))
	row("best score", fmt.Sprintf("%d (%d of %d zombies)", s.BestScore, r.best.Trapped(), r.initial.Zombies()))
	row("best moves", fmt.Sprintf("%s (%d)", moves, len(s.BestMoves)))
	row("max depth", fmt.Sprint(s.MaxDepth))
	row("elapsed", s.Elapsed.Round(time.Microsecond).String())

	if showBoard {
		fmt.Println(solveBoardStyle.Render(strings.Join(r.best.Rows(), "\n")))
	}
}

// saveSolutions records each summary with a fresh run ID.
func saveSolutions(results []solveResult) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		runID, err := store.SaveSolution(storage.Solution{
			LevelID:    r.job.id,
			BoardKey:   r.initial.Key(),
			StateCount: r.summary.States,
			BestScore:  r.summary.BestScore,
			BestMoves:  statespace.FormatMoves(r.summary.BestMoves),
			MaxDepth:   r.summary.MaxDepth,
			Elapsed:    r.summary.Elapsed,
		})
		if err != nil {
			return fmt.Errorf("level %s: %w", r.job.id, err)
		}
		logger.Debug("saved solution", "level", r.job.id, "run", runID)
	}
	return nil
}
