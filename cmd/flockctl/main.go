package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/matheus3301/flock/internal/session"
	"github.com/matheus3301/flock/internal/tui/client"
)

// errUsage marks a malformed command line; main prints usage for it.
var errUsage = errors.New("usage")

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	timeout := flag.Duration("timeout", 30*time.Second, "per-command timeout (watch ignores it)")
	flag.Usage = printUsage
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "sessions" {
		if err := listSessions(os.Stdout, *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	socketPath := session.SocketPath(sessionName)
	if _, err := os.Stat(socketPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: no daemon for session %q (start flockd --session %s)\n", sessionName, sessionName)
		os.Exit(1)
	}
	c, err := client.New(socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for session %q: %v\n", sessionName, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if args[0] != "watch" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	cli := &cli{c: c, json: *jsonFlag, session: sessionName, out: os.Stdout}
	if err := cli.run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			printUsage()
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: flockctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  sessions                                List known sessions")
	fmt.Fprintln(os.Stderr, "  status                                  Show session status")
	fmt.Fprintln(os.Stderr, "  groups list                             List groups")
	fmt.Fprintln(os.Stderr, "  groups create <name> [member...]        Create a group")
	fmt.Fprintln(os.Stderr, "  groups read <id>                        Mark a group as read")
	fmt.Fprintln(os.Stderr, "  groups invite <id>                      Print an invite QR code")
	fmt.Fprintln(os.Stderr, "  messages list <group>                   Show a group's messages")
	fmt.Fprintln(os.Stderr, "  messages send [--video url] <group> <text>")
	fmt.Fprintln(os.Stderr, "  messages search <query>                 Search message text")
	fmt.Fprintln(os.Stderr, "  contacts list | request <id>")
	fmt.Fprintln(os.Stderr, "  prayers list | add [--anonymous] [--private] <text> | toggle <id> | delete <id> | pray <id>")
	fmt.Fprintln(os.Stderr, "  notes list [sermon] | add [--sermon id] <title> <content> | delete <id>")
	fmt.Fprintln(os.Stderr, "  sermons list | summarize <id>")
	fmt.Fprintln(os.Stderr, "  songs list")
	fmt.Fprintln(os.Stderr, "  shorts list")
	fmt.Fprintln(os.Stderr, "  ask <text>                              Ask the Digital Shepherd")
	fmt.Fprintln(os.Stderr, "  story <topic>                           Generate a children's story")
	fmt.Fprintln(os.Stderr, "  watch                                   Stream chat updates")
}
