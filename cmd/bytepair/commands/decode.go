package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [id...]",
	Short: "Decode token IDs back to text",
	Long: `Decode converts a sequence of token IDs back to UTF-8 text using a
trained model. IDs are read from the arguments, or from stdin when none are
given. An ID the model never produced is an error.`,
	RunE: runDecode,
}

var decodeModel string

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&decodeModel, "model", "m", "", "trained model file")
}

func runDecode(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(decodeModel)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		input, err := readInput(nil)
		if err != nil {
			return err
		}
		args = strings.Fields(input)
	}

	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	text, err := tok.Decode(ids)
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	fmt.Println(text)
	return nil
}
