package tui

import "strings"

// Command is a composer line starting with '/'.
type Command struct {
	Name string
	Args []string
	Rest string // everything after the name, trimmed
}

// ParseCommand parses a composer line. ok is false when the line is plain
// text to send.
func ParseCommand(input string) (cmd Command, ok bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") || len(input) == 1 {
		return Command{}, false
	}
	parts := strings.SplitN(input[1:], " ", 2)
	cmd.Name = strings.ToLower(parts[0])
	if len(parts) > 1 {
		cmd.Rest = strings.TrimSpace(parts[1])
		cmd.Args = strings.Fields(cmd.Rest)
	}
	return cmd, true
}

// VideoArgs splits "/video <url> [caption...]".
func (c Command) VideoArgs() (url, caption string) {
	if len(c.Args) == 0 {
		return "", ""
	}
	url = c.Args[0]
	caption = strings.TrimSpace(strings.TrimPrefix(c.Rest, url))
	return url, caption
}

// NewGroupArgs splits "/new <name> [@member...]": words starting with '@'
// are member ids, the rest is the name.
func (c Command) NewGroupArgs() (name string, members []string) {
	var words []string
	for _, a := range c.Args {
		if id, found := strings.CutPrefix(a, "@"); found {
			if id != "" {
				members = append(members, id)
			}
			continue
		}
		words = append(words, a)
	}
	return strings.Join(words, " "), members
}
