package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aiworkshop/internal/render"
	"github.com/katalvlaran/aiworkshop/internal/tictactoe"
	"github.com/katalvlaran/aiworkshop/minimax"
)

var (
	boardRows  string
	showScores bool
	static     bool
)

// tictactoeCmd is exercise 08
var tictactoeCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "08: play tic-tac-toe against minimax",
	Long: `Starts an interactive game against a minimax player. --board sets the
starting position as three comma-separated rows, e.g. "XX.,OO.,...".
With --static the position is scored and printed once instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		board := minimax.NewBoard()
		if boardRows != "" {
			var err error
			if board, err = minimax.ParseBoard(strings.Split(boardRows, ",")); err != nil {
				return err
			}
		}

		if !static {
			return runExercise("tictactoe", func(l *zap.Logger) (int, error) {
				p := tea.NewProgram(tictactoe.New(board, showScores),
					tea.WithContext(cmd.Context()),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.OutOrStdout()),
				)
				final, err := p.Run()
				if err != nil {
					return 0, err
				}
				end := final.(tictactoe.Model).Board()
				o, _ := end.State()
				l.Debug("Game closed", zap.Stringer("outcome", o), zap.Int("free", len(end.Moves())))
				return 9 - len(end.Moves()), nil
			})
		}

		return runExercise("tictactoe", func(l *zap.Logger) (int, error) {
			out := cmd.OutOrStdout()
			var scores []minimax.MoveScore
			if showScores {
				scores = minimax.Scores(board)
			}
			fmt.Fprint(out, render.Board(board, scores, "", styles))

			best, err := minimax.Best(board)
			if err != nil {
				o, _ := board.State()
				fmt.Fprintf(out, "Game over: %s.\n", o)
				return 0, nil
			}
			fmt.Fprintf(out, "Best move for %s: %s\n", board.Next(), best)
			return len(board.Moves()), nil
		})
	},
}

func init() {
	tictactoeCmd.Flags().StringVar(&boardRows, "board", "", "Starting position as three comma-separated rows")
	tictactoeCmd.Flags().BoolVar(&showScores, "scores", false, "Show the minimax score of every free square")
	tictactoeCmd.Flags().BoolVar(&static, "static", false, "Print the scored position instead of playing")

	rootCmd.AddCommand(tictactoeCmd)
}
