package command

import (
	"fmt"
	"strings"
)

// Command identifies one of the wall connector's status queries. Its
// value doubles as the API path segment.
type Command string

const (
	Lifetime   Command = "lifetime"
	Version    Command = "version"
	Vitals     Command = "vitals"
	WifiStatus Command = "wifi_status"
)

// All lists the commands in the order they are advertised to the user.
var All = []Command{Lifetime, Version, Vitals, WifiStatus}

// Endpoint returns the API path segment for the command.
func (c Command) Endpoint() string {
	return string(c)
}

type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s', available commands: %s", e.Input, joinCommands(All))
}

type AmbiguousCommandError struct {
	Input   string
	Matches []Command
}

func (e *AmbiguousCommandError) Error() string {
	return fmt.Sprintf("ambiguous command '%s', matches: %s", e.Input, joinCommands(e.Matches))
}

func joinCommands(cmds []Command) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Resolve maps a possibly-abbreviated command token to the unique
// command it is a prefix of. An exact name always wins outright.
func Resolve(input string) (Command, error) {
	if input == "" {
		return "", &UnknownCommandError{Input: input}
	}

	var matches []Command
	for _, c := range All {
		if string(c) == input {
			return c, nil
		}
		if strings.HasPrefix(string(c), input) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", &UnknownCommandError{Input: input}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousCommandError{Input: input, Matches: matches}
	}
}
