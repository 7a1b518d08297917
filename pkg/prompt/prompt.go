package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// CreateChoice is the answer to the issue creation confirmation.
type CreateChoice string

// Issue creation choices.
const (
	ChoiceCreate          CreateChoice = "create"
	ChoiceEdit            CreateChoice = "edit"
	ChoiceSkip            CreateChoice = "skip"
	ChoiceSkipAndRemember CreateChoice = "skip-and-remember"
	ChoiceAbort           CreateChoice = "abort"
)

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptCreateChoice asks what to do with a marker that has no issue yet.
	PromptCreateChoice(title string) (CreateChoice, error)

	// PromptForTitle prompts the user for an issue title, keeping defaultTitle on empty input.
	PromptForTitle(defaultTitle string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptForToken prompts the user for the access token of a service.
	PromptForToken(serviceName string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
	// ttyInput makes the selector read the terminal instead of stdin.
	ttyInput bool
}

// NewPrompt creates a new Prompt instance reading stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// NewTTYPrompt creates a Prompt reading the controlling terminal.
// Git hooks receive the pushed refs on stdin, answers must come from the terminal.
func NewTTYPrompt() Prompter {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return NewPrompt()
	}
	return &realPrompt{
		reader:   bufio.NewReader(tty),
		out:      os.Stdout,
		ttyInput: true,
	}
}

// PromptCreateChoice asks what to do with a marker that has no issue yet.
func (p *realPrompt) PromptCreateChoice(title string) (CreateChoice, error) {
	return promptCreateChoiceBubbleTea(title, p.ttyInput)
}

// PromptForTitle prompts the user for an issue title, keeping defaultTitle on empty input.
func (p *realPrompt) PromptForTitle(defaultTitle string) (string, error) {
	fmt.Fprintf(p.out, "Issue title [default: %s]: ", defaultTitle)

	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultTitle, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptForToken prompts the user for the access token of a service.
func (p *realPrompt) PromptForToken(serviceName string) (string, error) {
	fmt.Fprintf(p.out, "Enter a personal access token for %s (it will be stored in the local git config): ", serviceName)

	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	token := strings.TrimSpace(input)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
