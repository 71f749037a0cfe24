package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aiworkshop/filesearch"
)

var (
	searchRoot    string
	searchName    string
	searchSubpath string
)

// fileSearchCmd is exercise 04
var fileSearchCmd = &cobra.Command{
	Use:   "file-search",
	Short: "04: find a file by name with depth-first search",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("name") {
			cfg.FileSearch.Name = searchName
		}
		name := cfg.FileSearch.Name
		return runFileSearch(cmd, "file-search", fmt.Sprintf("File %q", name),
			func(fsys fs.FS, opts ...filesearch.Option) (string, error) {
				return filesearch.FindFile(fsys, ".", name, opts...)
			})
	},
}

// subpathSearchCmd is exercise 05
var subpathSearchCmd = &cobra.Command{
	Use:   "subpath-search",
	Short: "05: find a file by the tail of its path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("subpath") {
			cfg.FileSearch.Subpath = strings.Split(strings.Trim(searchSubpath, "/"), "/")
		}
		subpath := cfg.FileSearch.Subpath
		return runFileSearch(cmd, "subpath-search", fmt.Sprintf("Subpath %q", strings.Join(subpath, "/")),
			func(fsys fs.FS, opts ...filesearch.Option) (string, error) {
				return filesearch.FindSubpath(fsys, ".", subpath, opts...)
			})
	},
}

func runFileSearch(cmd *cobra.Command, exercise, what string, search func(fs.FS, ...filesearch.Option) (string, error)) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	return runExercise(exercise, func(l *zap.Logger) (int, error) {
		visited := 0
		found, err := search(os.DirFS(root),
			filesearch.WithContext(cmd.Context()),
			filesearch.WithMaxDepth(cfg.FileSearch.MaxDepth),
			filesearch.WithOnVisit(func(dir string, depth int) error {
				visited++
				l.Debug("Visiting directory", zap.String("dir", dir), zap.Int("depth", depth))
				return nil
			}),
		)
		out := cmd.OutOrStdout()
		switch {
		case errors.Is(err, filesearch.ErrNotFound):
			fmt.Fprintf(out, "%s is not found under %s (%d directories visited).\n", what, root, visited)
			return visited, nil
		case err != nil:
			return visited, err
		}
		fmt.Fprintf(out, "Found the file at: %s\n", filepath.Join(root, filepath.FromSlash(found)))
		fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("%d directories visited", visited)))
		return visited, nil
	})
}

func resolveRoot(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("root") {
		cfg.FileSearch.Root = searchRoot
	}
	if cfg.FileSearch.Root != "" {
		return cfg.FileSearch.Root, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no search root configured: %w", err)
	}
	return home, nil
}

func init() {
	for _, c := range []*cobra.Command{fileSearchCmd, subpathSearchCmd} {
		c.Flags().StringVar(&searchRoot, "root", "", "Directory to search (default: home directory)")
	}
	fileSearchCmd.Flags().StringVar(&searchName, "name", "", "File name to find")
	subpathSearchCmd.Flags().StringVar(&searchSubpath, "subpath", "", "Slash-separated subpath ending with a file name")

	rootCmd.AddCommand(fileSearchCmd)
	rootCmd.AddCommand(subpathSearchCmd)
}
