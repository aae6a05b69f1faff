package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattsre/bytepair/internal/bpefile"
	"github.com/mattsre/bytepair/internal/logging"
	"github.com/mattsre/bytepair/internal/tokenizer"
)

var trainCmd = &cobra.Command{
	Use:   "train [corpus-file]",
	Short: "Train a BPE model on a text corpus",
	Long: `Train learns merge rules from a UTF-8 text corpus until the target
vocabulary size is reached (or no pair is left to merge) and writes the
trained model to a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

var (
	trainOutput    string
	trainVocabSize int
	trainStream    bool
)

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().StringVarP(&trainOutput, "output", "o", "", "path for the trained model file")
	trainCmd.Flags().IntVar(&trainVocabSize, "vocab-size", 0, "target vocabulary size (256 byte tokens + merges)")
	trainCmd.Flags().BoolVar(&trainStream, "stream", false, "train on the flat byte stream, without pre-tokenization")
}

func runTrain(cmd *cobra.Command, args []string) error {
	corpus, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	vocabSize := trainVocabSize
	if vocabSize == 0 {
		vocabSize = appConfig.Tokenizer.VocabSize
	}

	tok := tokenizer.NewTokenizer()
	if trainStream || !appConfig.Tokenizer.Pretokenize {
		tok = tokenizer.NewStreamTokenizer()
	}

	start := time.Now()
	tok.Train(string(corpus), vocabSize)
	logging.Infof("trained %d merges from %d corpus bytes in %s",
		tok.MergeCount(), len(corpus), time.Since(start))

	output := trainOutput
	if output == "" {
		output = appConfig.Tokenizer.ModelPath
	}
	if err := bpefile.Save(output, tok.ToFile()); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	fmt.Printf("Trained %d merges (vocabulary size %d) from %s\n",
		tok.MergeCount(), tok.VocabSize(), args[0])
	fmt.Printf("Model written to %s\n", output)
	return nil
}
