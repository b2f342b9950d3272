// Package cli is the interactive admin shell behind cmd/blogctl.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bloglist/internal/domain/analytics"
	"bloglist/internal/domain/models"
	"bloglist/internal/services/blogs"

	"github.com/chzyer/readline"
)

// ErrExit is returned by ExecuteCommand when the user asks to leave.
var ErrExit = errors.New("exit requested")

type Authentication interface {
	Register(ctx context.Context, username, name, password string) (models.User, error)
}

type ServiceBlogs interface {
	List(ctx context.Context) ([]models.Post, error)
	ListUsers(ctx context.Context) ([]blogs.UserWithPosts, error)
	Stats(ctx context.Context) (analytics.Summary, error)
}

// PasswordReader prompts for a secret without echoing it.
type PasswordReader func(prompt string) ([]byte, error)

type CLI struct {
	auth         Authentication
	blogs        ServiceBlogs
	out          io.Writer
	readPassword PasswordReader
}

func NewCLI(auth Authentication, svc ServiceBlogs, out io.Writer, readPassword PasswordReader) *CLI {
	return &CLI{
		auth:         auth,
		blogs:        svc,
		out:          out,
		readPassword: readPassword,
	}
}

// Run reads and executes one line. readline.ErrInterrupt and io.EOF are passed through.
func (c *CLI) Run(ctx context.Context, rl *readline.Instance) error {
	line, err := rl.Readline()
	if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	return c.ExecuteCommand(ctx, ParseArgs(line))
}

// ParseArgs splits on spaces, double quotes group words.
func ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ', '\t':
			if inQuotes {
				currentArg.WriteRune(char)
				continue
			}
			if currentArg.Len() > 0 {
				args = append(args, currentArg.String())
				currentArg.Reset()
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}
	return args
}

func (c *CLI) ExecuteCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "useradd":
		return c.handleUserAdd(ctx, args[1:])
	case "users":
		return c.handleUsers(ctx)
	case "posts":
		return c.handlePosts(ctx)
	case "stats":
		return c.handleStats(ctx)
	case "help":
		c.printHelp()
		return nil
	case "exit", "quit":
		return ErrExit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
}

func (c *CLI) handleUserAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: useradd <username> [name]")
	}

	username := args[0]
	name := strings.Join(args[1:], " ")

	password, err := c.readPassword("password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := c.auth.Register(ctx, username, name, string(password))
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			return verr
		case errors.Is(err, models.ErrConflict):
			return fmt.Errorf("username %q is taken", username)
		}
		return err
	}

	fmt.Fprintf(c.out, "created user %s (%s)\n", user.Username, user.ID)
	return nil
}

func (c *CLI) handleUsers(ctx context.Context) error {
	users, err := c.blogs.ListUsers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tPOSTS")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", u.User.ID, u.User.Username, u.User.Name, len(u.Posts))
	}
	return tw.Flush()
}

func (c *CLI) handlePosts(ctx context.Context) error {
	posts, err := c.blogs.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tLIKES\tOWNER")
	for _, p := range posts {
		owner := p.UserID
		if p.User != nil {
			owner = p.User.Username
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Title, p.Author, p.Likes, owner)
	}
	return tw.Flush()
}

func (c *CLI) handleStats(ctx context.Context) error {
	s, err := c.blogs.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "total likes:   %d\n", s.TotalLikes)
	if s.FavoriteBlog == nil {
		fmt.Fprintln(c.out, "no posts yet")
		return nil
	}
	fmt.Fprintf(c.out, "favorite blog: %q by %s (%d likes)\n", s.FavoriteBlog.Title, s.FavoriteBlog.Author, s.FavoriteBlog.Likes)
	fmt.Fprintf(c.out, "most blogs:    %s (%d)\n", s.MostBlogs.Author, s.MostBlogs.Blogs)
	fmt.Fprintf(c.out, "most likes:    %s (%d)\n", s.MostLikes.Author, s.MostLikes.Likes)
	return nil
}

func (c *CLI) printHelp() {
	fmt.Fprint(c.out, `commands:
  useradd <username> [name]   create a user, password is prompted
  users                       list users and their post counts
  posts                       list posts
  stats                       show like statistics
  help                        show this help
  exit                        leave
`)
}
