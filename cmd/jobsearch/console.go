package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jrsteele09/go-jobsearch/session"
	"github.com/rs/zerolog"
)

const troubleshootAdvice = " Try logging off, clear cookies and cache and log back in. If problems persist please contact support@ematch.com"

// argumentPrompts lists, in order, what to ask for before running a command
var argumentPrompts = map[string][]string{
	session.CmdSearchJob:  {" Enter keyword:  ", " Enter location: ", " Enter category: "},
	session.CmdGetJobInfo: {" Enter Number:  "},
}

type roleCatalog interface {
	FindRoles() []string
}

// console drives login and the command menu over a line oriented terminal
type console struct {
	in     *bufio.Scanner
	out    io.Writer
	auth   *session.Authenticator
	roles  roleCatalog
	logger zerolog.Logger
}

func newConsole(in io.Reader, out io.Writer, auth *session.Authenticator, roles roleCatalog, logger zerolog.Logger) *console {
	return &console{
		in:     bufio.NewScanner(in),
		out:    out,
		auth:   auth,
		roles:  roles,
		logger: logger,
	}
}

// launch keeps prompting for a login until one succeeds, then serves the command menu until Quit.
// Running out of input ends it without error.
func (c *console) launch() error {
	for {
		s, err := c.login()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s == nil {
			fmt.Fprintln(c.out, "** Login failed")
			continue
		}

		err = c.serve(s)
		s.Close()
		c.logger.Info().Msg("Ending session and terminating")
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
}

// login returns a nil session when the credentials are refused
func (c *console) login() (*session.Session, error) {
	fmt.Fprintf(c.out, "\n  roles: %s\n", strings.Join(c.roles.FindRoles(), ", "))

	name, err := c.readLine("  name: ")
	if err != nil {
		return nil, err
	}
	passPhrase, err := c.readLine("  password: ")
	if err != nil {
		return nil, err
	}
	role, err := c.readLine("  role (blank for your default): ")
	if err != nil {
		return nil, err
	}

	s, err := c.auth.Authenticate(session.Login{UserName: name, PassPhrase: passPhrase, Role: role})
	if err != nil {
		c.logger.Debug().Err(err).Msg("login refused")
		return nil, nil
	}
	return s, nil
}

func (c *console) serve(s *session.Session) error {
	for {
		commands := s.AvailableCommands()
		fmt.Fprintln(c.out)
		for i, name := range commands {
			fmt.Fprintf(c.out, "%2d - %s\n", i, name)
		}
		fmt.Fprintf(c.out, "%2d - Quit\n", len(commands))

		selection, err := c.readLine(fmt.Sprintf("  action (0-%d): ", len(commands)))
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(selection)
		if err != nil || n < 0 || n > len(commands) {
			continue
		}
		if n == len(commands) {
			return nil
		}

		command := commands[n]
		c.logger.Debug().Str("command", command).Msg("Command selected")
		args, err := c.arguments(command)
		if err != nil {
			return err
		}

		result, err := s.Execute(command, args)
		if err != nil {
			fmt.Fprintf(c.out, "** %v\n", err)
			continue
		}
		if message := result.String(); message != "" {
			fmt.Fprintln(c.out, message)
		}
	}
}

func (c *console) arguments(command string) ([]string, error) {
	if command == session.CmdTroubleshoot {
		fmt.Fprintln(c.out, troubleshootAdvice)
	}

	prompts, ok := argumentPrompts[command]
	if !ok {
		return nil, nil
	}
	fmt.Fprintf(c.out, "\n< %s >\n", command)
	if command == session.CmdSearchJob {
		fmt.Fprintln(c.out, " Enter criteria (to skip, enter 0):")
	}

	args := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		arg, err := c.readLine(prompt)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (c *console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
