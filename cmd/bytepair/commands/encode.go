package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text to token IDs",
	Long: `Encode converts UTF-8 text to a sequence of token IDs using a trained
model. Text is read from the arguments, or from stdin when none are given.`,
	RunE: runEncode,
}

var (
	encodeModel      string
	encodeShowTokens bool
)

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVarP(&encodeModel, "model", "m", "", "trained model file")
	encodeCmd.Flags().BoolVar(&encodeShowTokens, "show-tokens", false, "print each token's byte span alongside its ID")
}

func runEncode(cmd *cobra.Command, args []string) error {
	tok, err := loadTokenizer(encodeModel)
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	ids := tok.Encode(text)

	if encodeShowTokens {
		for _, id := range ids {
			span, _ := tok.TokenBytes(id)
			fmt.Printf("%d\t%q\n", id, span)
		}
		return nil
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	fmt.Println(strings.Join(out, " "))
	return nil
}
