package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the contents of a trained model",
	Long:  "Show a trained model's mode, vocabulary size, and merge rules",
	RunE:  runInspect,
}

var (
	inspectModel  string
	inspectMerges int
)

var inspectTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectModel, "model", "m", "", "trained model file")
	inspectCmd.Flags().IntVar(&inspectMerges, "merges", 20, "number of merge rules to show (0 for all)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(inspectModel)
	if err != nil {
		return err
	}

	mode := "pre-tokenized (GPT-2 style chunks)"
	if !tok.Pretokenizes() {
		mode = "stream (flat byte sequence)"
	}

	fmt.Println(inspectTitleStyle.Render("bytepair model"))
	fmt.Printf("Mode:       %s\n", mode)
	fmt.Printf("Vocabulary: %d tokens (256 bytes + %d merges)\n\n", tok.VocabSize(), tok.MergeCount())

	merges := tok.Merges()
	if inspectMerges > 0 && len(merges) > inspectMerges {
		merges = merges[:inspectMerges]
	}
	if len(merges) == 0 {
		fmt.Println("No merge rules.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRULE\tBYTES")
	fmt.Fprintln(w, "--\t----\t-----")
	for _, m := range merges {
		span, _ := tok.TokenBytes(m.ID)
		fmt.Fprintf(w, "%d\t(%d, %d)\t%q\n", m.ID, m.Left, m.Right, span)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if shown := len(merges); shown < tok.MergeCount() {
		fmt.Printf("\n... and %d more (use --merges 0 to show all)\n", tok.MergeCount()-shown)
	}
	return nil
}
