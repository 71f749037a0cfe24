// Package catalog describes the workshop exercises.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// ErrUnknownExercise reports a lookup that matches no exercise.
var ErrUnknownExercise = errors.New("catalog: unknown exercise")

//go:embed exercises/*.md
var docs embed.FS

// Exercise is one catalog entry.
type Exercise struct {
	// ID is the two-digit exercise number.
	ID string
	// Command is the workshop subcommand running the exercise.
	Command   string
	Title     string
	Algorithm string
	// Packages lists the library packages the exercise exercises.
	Packages []string
}

var exercises = []Exercise{
	{"01", "random-search", "Find an available computer", "random search", []string{"randsearch"}},
	{"02", "trajectory", "Duck-hunt trajectory", "generate and test", []string{"trajectory"}},
	{"03", "hill-climb", "Radio station finetune", "hill climbing", []string{"hillclimb"}},
	{"04", "file-search", "File search", "depth-first search", []string{"filesearch"}},
	{"05", "subpath-search", "Subpath search", "depth-first search", []string{"filesearch"}},
	{"06", "closest-tree", "Closest tree on the map", "BFS / Dijkstra", []string{"grid", "bfs", "dijkstra"}},
	{"07", "castle-path", "Path to the castle", "A*", []string{"grid", "astar"}},
	{"08", "tictactoe", "Tic-tac-toe", "minimax", []string{"minimax"}},
	{"09", "quantize", "Image quantization", "k-means", []string{"kmeans"}},
	{"10", "bike-size", "Bicycle size", "k-nearest neighbours", []string{"knn"}},
}

// All returns the exercises in workshop order.
func All() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// Lookup finds an exercise by ID ("7" and "07" both work) or by command.
func Lookup(name string) (Exercise, error) {
	id := name
	if len(id) == 1 {
		id = "0" + id
	}
	for _, e := range exercises {
		if e.ID == id || e.Command == name {
			return e, nil
		}
	}
	return Exercise{}, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
}

// Markdown returns the embedded description of e.
func (e Exercise) Markdown() (string, error) {
	b, err := docs.ReadFile("exercises/" + e.ID + "-" + e.Command + ".md")
	if err != nil {
		return "", fmt.Errorf("catalog: description of %s: %w", e.ID, err)
	}
	return string(b), nil
}

// Render formats markdown for the terminal. style is a glamour standard
// style name; "auto" picks dark or light from the terminal background.
func Render(markdown, style string, wordWrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("catalog: renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("catalog: render: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
