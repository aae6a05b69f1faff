package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattsre/bytepair/internal/bpefile"
	"github.com/mattsre/bytepair/internal/tokenizer"
)

// loadTokenizer loads the model from path, or from the configured default
// model path when path is empty.
func loadTokenizer(path string) (*tokenizer.Tokenizer, error) {
	if path == "" {
		path = appConfig.Tokenizer.ModelPath
	}

	f, err := bpefile.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}

	tok, err := tokenizer.NewTokenizerFromFile(f)
	if err != nil {
		return nil, fmt.Errorf("invalid model %s: %w", path, err)
	}
	return tok, nil
}

// readInput returns the joined arguments, or stdin when no arguments were
// given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// parseIDs converts whitespace-separated arguments to token IDs.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid token ID %q", field)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
