package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aiworkshop/internal/catalog"
	"github.com/katalvlaran/aiworkshop/internal/render"
)

var (
	describeStyle string
	describeWidth int
)

// listCmd prints the exercise table
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the workshop exercises",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := render.NewTable("Exercises", "#", "command", "exercise", "algorithm", "packages")
		for _, e := range catalog.All() {
			t.AddRow(e.ID, e.Command, e.Title, e.Algorithm, strings.Join(e.Packages, ", "))
		}
		fmt.Fprint(cmd.OutOrStdout(), t.View(styles))
		return nil
	},
}

// describeCmd renders the markdown description of one exercise
var describeCmd = &cobra.Command{
	Use:   "describe <id|command>",
	Short: "Explain an exercise and its algorithm",
	Long: `Renders the description of an exercise. The exercise can be named by its
number ("7" or "07") or by its command ("castle-path").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		md, err := e.Markdown()
		if err != nil {
			return err
		}
		out, err := catalog.Render(md, describeStyle, describeWidth)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeStyle, "style", "auto", "glamour style: auto, dark, light, notty")
	describeCmd.Flags().IntVar(&describeWidth, "width", 80, "Word wrap width")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(describeCmd)
}
