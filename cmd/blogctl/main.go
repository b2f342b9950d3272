package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bloglist/internal/cli"
	"bloglist/internal/deps"

	"github.com/chzyer/readline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	d, err := deps.New(ctx, os.Args[1:])
	if err != nil {
		return err
	}
	defer d.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "blogctl> ",
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	c := cli.NewCLI(d.Auth, d.Blogs, rl.Stdout(), rl.ReadPassword)

	for {
		err := c.Run(ctx, rl)
		switch {
		case err == nil:
		case errors.Is(err, readline.ErrInterrupt):
			fmt.Fprintln(rl.Stdout(), "Use 'exit' to leave.")
		case errors.Is(err, io.EOF), errors.Is(err, cli.ErrExit):
			return nil
		default:
			fmt.Fprintln(rl.Stderr(), "Error:", err)
		}
	}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blogctl_history")
}
