package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	atotto "github.com/atotto/clipboard"
)

// nativeStrategy uses the atotto clipboard binding.
type nativeStrategy struct{}

func (nativeStrategy) Name() string { return "native" }

func (nativeStrategy) Copy(text string) error {
	if atotto.Unsupported {
		return fmt.Errorf("native clipboard unsupported on this platform")
	}
	return atotto.WriteAll(text)
}

// commandStrategy pipes text into the first available platform copy command.
type commandStrategy struct {
	candidates [][]string
}

func newCommandStrategy() commandStrategy {
	switch runtime.GOOS {
	case "darwin":
		return commandStrategy{candidates: [][]string{{"pbcopy"}}}
	case "windows":
		return commandStrategy{candidates: [][]string{{"clip"}}}
	default:
		return commandStrategy{candidates: [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}}
	}
}

func (commandStrategy) Name() string { return "command" }

func (c commandStrategy) Copy(text string) error {
	for _, candidate := range c.candidates {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			continue
		}
		cmd := exec.Command(candidate[0], candidate[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", candidate[0], err)
		}
		return nil
	}
	return fmt.Errorf("no copy command available")
}
