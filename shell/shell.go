// Package shell implements the portfolio's command interpreter: a
// string-to-output dispatch table shared by the terminal UI and the web
// mirror. Commands produce text plus an action the host carries out
// (clear the screen, launch the snake game, exit).
package shell

import (
	"fmt"
	"sort"
	"strings"
)

// Action tells the host what to do after a command's output is shown.
type Action uint8

const (
	ActionNone Action = iota
	ActionClear
	ActionSnake
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionClear:
		return "clear"
	case ActionSnake:
		return "snake"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// Result is what executing a line produces.
type Result struct {
	Output string
	Action Action
}

// Command is one entry in the dispatch table.
type Command struct {
	Name    string
	Aliases []string
	Summary string
	Run     func(s *Shell, args []string) Result
}

// historyCap bounds the in-memory history ring.
const historyCap = 100

// Shell holds the command registry and the session's command history.
// Not safe for concurrent use; hosts serialize access.
type Shell struct {
	commands []*Command
	byName   map[string]*Command
	history  []string
}

// New returns a shell with all builtin commands registered.
func New() *Shell {
	s := &Shell{byName: make(map[string]*Command)}
	for _, c := range builtins() {
		s.register(c)
	}
	return s
}

func (s *Shell) register(c *Command) {
	s.commands = append(s.commands, c)
	s.byName[c.Name] = c
	for _, a := range c.Aliases {
		s.byName[a] = c
	}
}

// Commands returns the registry in registration order.
func (s *Shell) Commands() []*Command {
	out := make([]*Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// History returns a copy of the executed lines, oldest first.
func (s *Shell) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Execute runs one input line. Blank lines do nothing; unknown commands
// produce a hint, not an error; there are no failure modes here.
func (s *Shell) Execute(line string) Result {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{}
	}

	s.history = append(s.history, trimmed)
	if len(s.history) > historyCap {
		s.history = s.history[len(s.history)-historyCap:]
	}

	fields := strings.Fields(trimmed)
	name := strings.ToLower(fields[0])
	cmd, ok := s.byName[name]
	if !ok {
		return Result{Output: fmt.Sprintf("command not found: %s (try 'help')", name)}
	}
	return cmd.Run(s, fields[1:])
}

func builtins() []*Command {
	return []*Command{
		{
			Name:    "help",
			Summary: "list available commands",
			Run: func(s *Shell, _ []string) Result {
				var sb strings.Builder
				sb.WriteString("available commands:\n\n")
				width := 0
				for _, c := range s.commands {
					if len(c.Name) > width {
						width = len(c.Name)
					}
				}
				for _, c := range s.commands {
					sb.WriteString(fmt.Sprintf("  %-*s  %s", width, c.Name, c.Summary))
					if len(c.Aliases) > 0 {
						sb.WriteString(fmt.Sprintf(" (also: %s)", strings.Join(c.Aliases, ", ")))
					}
					sb.WriteByte('\n')
				}
				return Result{Output: sb.String()}
			},
		},
		{
			Name:    "about",
			Summary: "who I am",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: aboutText}
			},
		},
		{
			Name:    "skills",
			Summary: "languages and tools I work with",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: skillsText}
			},
		},
		{
			Name:    "projects",
			Summary: "selected things I have built",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: projectsText}
			},
		},
		{
			Name:    "experience",
			Summary: "where I have worked",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: experienceText}
			},
		},
		{
			Name:    "links",
			Aliases: []string{"socials"},
			Summary: "where to find me online",
			Run: func(_ *Shell, _ []string) Result {
				keys := make([]string, 0, len(Links))
				for k := range Links {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				var sb strings.Builder
				for _, k := range keys {
					sb.WriteString(fmt.Sprintf("  %-10s %s\n", k, Links[k]))
				}
				return Result{Output: sb.String()}
			},
		},
		{
			Name:    "contact",
			Summary: "how to reach me",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: contactText}
			},
		},
		{
			Name:    "banner",
			Aliases: []string{"welcome"},
			Summary: "print the welcome banner",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: Banner()}
			},
		},
		{
			Name:    "history",
			Summary: "show commands run this session",
			Run: func(s *Shell, _ []string) Result {
				var sb strings.Builder
				for i, line := range s.history {
					sb.WriteString(fmt.Sprintf("  %3d  %s\n", i+1, line))
				}
				return Result{Output: sb.String()}
			},
		},
		{
			Name:    "clear",
			Summary: "clear the screen",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Action: ActionClear}
			},
		},
		{
			Name:    "snake",
			Aliases: []string{"play"},
			Summary: "play the snake easter egg",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Action: ActionSnake}
			},
		},
		{
			Name:    "exit",
			Aliases: []string{"quit"},
			Summary: "leave the shell",
			Run: func(_ *Shell, _ []string) Result {
				return Result{Output: "bye!", Action: ActionExit}
			},
		},
	}
}
