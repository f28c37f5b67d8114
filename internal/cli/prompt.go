package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"codeberg.org/snonux/hanki/internal/phonetic"
)

// StdinCorrector returns a correction hook that asks the operator to fix a
// pinyin transcription the converter could not encode. An empty answer
// retries with the candidate unchanged.
func StdinCorrector(in io.Reader, out io.Writer) phonetic.CorrectFunc {
	scanner := bufio.NewScanner(in)
	var mu sync.Mutex

	return func(candidate string) (string, error) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(out, "\nCould not convert this pinyin transcription to zhuyin:\n    %s\n", candidate)
		fmt.Fprint(out, "Enter a corrected transcription (or press enter to retry as-is): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read correction: %w", err)
			}
			return "", fmt.Errorf("no correction entered: input closed")
		}

		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			return candidate, nil
		}
		return answer, nil
	}
}
