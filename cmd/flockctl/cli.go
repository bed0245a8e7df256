package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/session"
	"github.com/matheus3301/flock/internal/tui/client"
)

type cli struct {
	c       *client.Client
	json    bool
	session string
	out     io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "status":
		return c.status(ctx)
	case "groups":
		return c.groups(ctx, rest)
	case "messages":
		return c.messages(ctx, rest)
	case "contacts":
		return c.contacts(ctx, rest)
	case "prayers":
		return c.prayers(ctx, rest)
	case "notes":
		return c.notes(ctx, rest)
	case "sermons":
		return c.sermons(ctx, rest)
	case "songs":
		return c.songs(ctx, rest)
	case "shorts":
		return c.shorts(ctx, rest)
	case "ask":
		return c.ask(ctx, rest)
	case "story":
		return c.story(ctx, rest)
	case "watch":
		return c.watch(ctx)
	default:
		return usageErr("unknown command: %s", cmd)
	}
}

func sub(args []string, group string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, usageErr("%s needs a subcommand", group)
	}
	return args[0], args[1:], nil
}

func need(args []string, n int, form string) error {
	if len(args) < n {
		return usageErr("%s", form)
	}
	return nil
}

// emit writes v as JSON in --json mode, otherwise runs text.
func (c *cli) emit(v any, text func(w io.Writer)) error {
	if c.json {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func (c *cli) status(ctx context.Context) error {
	resp, err := c.c.Session.GetSessionStatus(ctx, &flockv1.GetSessionStatusRequest{})
	if err != nil {
		return err
	}
	return c.emit(resp, func(w io.Writer) {
		fmt.Fprintf(w, "Session:\t%s\n", resp.Session)
		fmt.Fprintf(w, "Status:\t%s\n", resp.Status)
		fmt.Fprintf(w, "Uptime:\t%s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
		if resp.Profile != nil {
			fmt.Fprintf(w, "Member:\t%s (%s, %s)\n", resp.Profile.Name, resp.Profile.Tier, resp.Profile.ChurchBranch)
		}
		fmt.Fprintf(w, "Groups:\t%d (%d unread)\n", resp.GroupCount, resp.UnreadCount)
		fmt.Fprintf(w, "Messages:\t%d\n", resp.MessageCount)
		fmt.Fprintf(w, "Prayers:\t%d\n", resp.PrayerCount)
		fmt.Fprintf(w, "Notes:\t%d\n", resp.NoteCount)
		fmt.Fprintf(w, "Shepherd:\t%s\n", onOff(resp.AIAvailable, "available", "offline"))
		fmt.Fprintf(w, "Simulation:\t%s\n", onOff(resp.SimulationOn, "on", "off"))
	})
}

func onOff(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

func (c *cli) groups(ctx context.Context, args []string) error {
	name, rest, err := sub(args, "groups")
	if err != nil {
		return err
	}
	switch name {
	case "list":
		resp, err := c.c.Chat.ListGroups(ctx, &flockv1.ListGroupsRequest{})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tUNREAD\tLAST MESSAGE")
			for _, g := range resp.Groups {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", g.ID, g.Name, g.Type, g.UnreadCount, g.LastMessage)
			}
		})
	case "create":
		if err := need(rest, 1, "groups create <name> [member...]"); err != nil {
			return err
		}
		resp, err := c.c.Chat.CreateGroup(ctx, &flockv1.CreateGroupRequest{Name: rest[0], MemberIDs: rest[1:]})
		if err != nil {
			return err
		}
		if resp.Group == nil {
			return errors.New("group name must not be blank")
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintf(w, "Created %s (%s) with %d members\n", resp.Group.Name, resp.Group.ID, len(resp.Group.Members))
		})
	case "read":
		if err := need(rest, 1, "groups read <id>"); err != nil {
			return err
		}
		resp, err := c.c.Chat.MarkGroupAsRead(ctx, &flockv1.MarkGroupAsReadRequest{GroupID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintf(w, "Marked %s as read\n", rest[0]) })
	case "invite":
		if err := need(rest, 1, "groups invite <id>"); err != nil {
			return err
		}
		resp, err := c.c.Chat.GetGroup(ctx, &flockv1.GetGroupRequest{GroupID: rest[0]})
		if err != nil {
			return err
		}
		link := inviteLink(c.session, resp.Group)
		if c.json {
			return c.emit(map[string]string{"group_id": resp.Group.ID, "link": link}, nil)
		}
		qr, err := renderQR(link)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Invite to %s\n%s\n%s\n", resp.Group.Name, qr, link)
		return nil
	default:
		return usageErr("unknown groups subcommand: %s", name)
	}
}

func (c *cli) messages(ctx context.Context, args []string) error {
	name, rest, err := sub(args, "messages")
	if err != nil {
		return err
	}
	switch name {
	case "list":
		if err := need(rest, 1, "messages list <group>"); err != nil {
			return err
		}
		resp, err := c.c.Message.ListMessages(ctx, &flockv1.ListMessagesRequest{GroupID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { writeMessages(w, resp.Messages) })
	case "send":
		fs := flag.NewFlagSet("messages send", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		video := fs.String("video", "", "video URL to attach")
		if err := fs.Parse(rest); err != nil {
			return usageErr("messages send: %v", err)
		}
		rest = fs.Args()
		if len(rest) < 1 || (len(rest) < 2 && *video == "") {
			return usageErr("messages send [--video url] <group> <text>")
		}
		resp, err := c.c.Message.SendMessage(ctx, &flockv1.SendMessageRequest{
			GroupID:  rest[0],
			Text:     strings.Join(rest[1:], " "),
			VideoRef: *video,
		})
		if err != nil {
			return err
		}
		if resp.Message == nil {
			return errors.New("nothing to send")
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintf(w, "Sent %s\n", resp.Message.ID) })
	case "search":
		if err := need(rest, 1, "messages search <query>"); err != nil {
			return err
		}
		resp, err := c.c.Message.SearchMessages(ctx, &flockv1.SearchMessagesRequest{Query: strings.Join(rest, " ")})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { writeMessages(w, resp.Messages) })
	default:
		return usageErr("unknown messages subcommand: %s", name)
	}
}

func writeMessages(w io.Writer, msgs []*flockv1.Message) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages.")
		return
	}
	for _, m := range msgs {
		sender := m.SenderName
		if m.IsMe {
			sender = "You"
		}
		text := m.Text
		if m.VideoRef != "" {
			text = strings.TrimSpace("[video " + m.VideoRef + "] " + text)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", time.UnixMilli(m.TimestampMs).Format("01/02 15:04"), m.GroupID, sender, text)
	}
}

func (c *cli) contacts(ctx context.Context, args []string) error {
	name, rest, err := sub(args, "contacts")
	if err != nil {
		return err
	}
	switch name {
	case "list":
		resp, err := c.c.Chat.ListContacts(ctx, &flockv1.ListContactsRequest{})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tBRANCH\tREQUEST")
			for _, ct := range resp.Contacts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ct.ID, ct.Name, ct.Status, ct.ChurchBranch, onOff(ct.RequestPending, "pending", ""))
			}
		})
	case "request":
		if err := need(rest, 1, "contacts request <id>"); err != nil {
			return err
		}
		resp, err := c.c.Chat.SendFriendRequest(ctx, &flockv1.SendFriendRequestRequest{ContactID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintf(w, "Friend request sent to %s\n", resp.Contact.Name) })
	default:
		return usageErr("unknown contacts subcommand: %s", name)
	}
}

func (c *cli) prayers(ctx context.Context, args []string) error {
	name, rest, err := sub(args, "prayers")
	if err != nil {
		return err
	}
	switch name {
	case "list":
		resp, err := c.c.Prayer.ListPrayerRequests(ctx, &flockv1.ListPrayerRequestsRequest{})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tAUTHOR\tPRAYED\tSTATUS\tREQUEST")
			for _, p := range resp.Requests {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", p.ID, p.Author, p.PrayedCount, p.Status, p.Content)
			}
		})
	case "add":
		fs := flag.NewFlagSet("prayers add", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		anonymous := fs.Bool("anonymous", false, "post without your name")
		private := fs.Bool("private", false, "only visible to leaders")
		if err := fs.Parse(rest); err != nil {
			return usageErr("prayers add: %v", err)
		}
		if fs.NArg() == 0 {
			return usageErr("prayers add [--anonymous] [--private] <text>")
		}
		resp, err := c.c.Prayer.AddPrayerRequest(ctx, &flockv1.AddPrayerRequestRequest{
			Content:   strings.Join(fs.Args(), " "),
			IsPrivate: *private,
			Anonymous: *anonymous,
		})
		if err != nil {
			return err
		}
		if resp.Request == nil {
			return errors.New("prayer request must not be blank")
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintf(w, "Posted %s\n", resp.Request.ID) })
	case "toggle":
		if err := need(rest, 1, "prayers toggle <id>"); err != nil {
			return err
		}
		resp, err := c.c.Prayer.TogglePrayerStatus(ctx, &flockv1.TogglePrayerStatusRequest{ID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			if !resp.Changed {
				fmt.Fprintln(w, "Unchanged: only the author can change a request's status")
				return
			}
			fmt.Fprintf(w, "%s is now %s\n", resp.Request.ID, resp.Request.Status)
		})
	case "delete":
		if err := need(rest, 1, "prayers delete <id>"); err != nil {
			return err
		}
		resp, err := c.c.Prayer.DeletePrayerRequest(ctx, &flockv1.DeletePrayerRequestRequest{ID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintln(w, onOff(resp.Deleted, "Deleted", "Not found")) })
	case "pray":
		if err := need(rest, 1, "prayers pray <id>"); err != nil {
			return err
		}
		resp, err := c.c.Prayer.PrayFor(ctx, &flockv1.PrayForRequest{ID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintf(w, "Prayed for %s (%d prayers)\n", resp.Request.ID, resp.Request.PrayedCount)
		})
	default:
		return usageErr("unknown prayers subcommand: %s", name)
	}
}

func (c *cli) notes(ctx context.Context, args []string) error {
	name, rest, err := sub(args, "notes")
	if err != nil {
		return err
	}
	switch name {
	case "list":
		req := &flockv1.ListNotesRequest{}
		if len(rest) > 0 {
			req.SermonID = rest[0]
		}
		resp, err := c.c.Note.ListNotes(ctx, req)
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tTITLE\tCONTENT")
			for _, n := range resp.Notes {
				fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, n.Title, n.Content)
			}
		})
	case "add":
		fs := flag.NewFlagSet("notes add", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		sermon := fs.String("sermon", "", "sermon the note belongs to")
		if err := fs.Parse(rest); err != nil {
			return usageErr("notes add: %v", err)
		}
		if fs.NArg() < 2 {
			return usageErr("notes add [--sermon id] <title> <content>")
		}
		resp, err := c.c.Note.AddNote(ctx, &flockv1.AddNoteRequest{
			SermonID: *sermon,
			Title:    fs.Arg(0),
			Content:  strings.Join(fs.Args()[1:], " "),
		})
		if err != nil {
			return err
		}
		if resp.Note == nil {
			return errors.New("note content must not be blank")
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintf(w, "Saved %q (%s)\n", resp.Note.Title, resp.Note.ID) })
	case "delete":
		if err := need(rest, 1, "notes delete <id>"); err != nil {
			return err
		}
		resp, err := c.c.Note.DeleteNote(ctx, &flockv1.DeleteNoteRequest{ID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintln(w, onOff(resp.Deleted, "Deleted", "Not found")) })
	default:
		return usageErr("unknown notes subcommand: %s", name)
	}
}

func (c *cli) sermons(ctx context.Context, args []string) error {
	name, rest, err := sub(args, "sermons")
	if err != nil {
		return err
	}
	switch name {
	case "list":
		resp, err := c.c.Library.ListSermons(ctx, &flockv1.ListSermonsRequest{})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tDATE\tTITLE\tPREACHER\tSERIES")
			for _, s := range resp.Sermons {
				title := s.Title
				if s.IsLive {
					title += " (LIVE)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Date, title, s.Preacher, s.Series)
			}
		})
	case "summarize":
		if err := need(rest, 1, "sermons summarize <id>"); err != nil {
			return err
		}
		resp, err := c.c.Shepherd.SummarizeSermon(ctx, &flockv1.SummarizeSermonRequest{SermonID: rest[0]})
		if err != nil {
			return err
		}
		return c.emit(resp, func(w io.Writer) { fmt.Fprintln(w, resp.Summary) })
	default:
		return usageErr("unknown sermons subcommand: %s", name)
	}
}

func (c *cli) songs(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] != "list" {
		return usageErr("songs list")
	}
	resp, err := c.c.Library.ListSongs(ctx, &flockv1.ListSongsRequest{})
	if err != nil {
		return err
	}
	return c.emit(resp, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tTITLE\tARTIST\tDURATION")
		for _, s := range resp.Songs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Artist, s.Duration)
		}
	})
}

func (c *cli) shorts(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] != "list" {
		return usageErr("shorts list")
	}
	resp, err := c.c.Library.ListShorts(ctx, &flockv1.ListShortsRequest{})
	if err != nil {
		return err
	}
	return c.emit(resp, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tTYPE\tCREATOR\tDESCRIPTION")
		for _, s := range resp.Shorts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Type, s.Creator, s.Description)
		}
	})
}

func (c *cli) ask(ctx context.Context, args []string) error {
	if err := need(args, 1, "ask <text>"); err != nil {
		return err
	}
	resp, err := c.c.Shepherd.GetGuidance(ctx, &flockv1.GetGuidanceRequest{Text: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	return c.emit(resp, func(w io.Writer) { fmt.Fprintln(w, resp.Reply) })
}

func (c *cli) story(ctx context.Context, args []string) error {
	if err := need(args, 1, "story <topic>"); err != nil {
		return err
	}
	resp, err := c.c.Shepherd.GenerateStory(ctx, &flockv1.GenerateStoryRequest{Topic: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	if resp.Story == nil {
		return errors.New("the story could not be written right now, try again later")
	}
	return c.emit(resp, func(w io.Writer) {
		fmt.Fprintf(w, "%s\n\n", resp.Story.Title)
		for i, p := range resp.Story.Pages {
			fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, p.Text, p.ImageURL)
		}
	})
}

func (c *cli) watch(ctx context.Context) error {
	stream, err := c.c.Chat.WatchChatUpdates(ctx, &flockv1.WatchChatUpdatesRequest{})
	if err != nil {
		return err
	}
	for {
		env, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		if c.json {
			if err := c.emit(env, nil); err != nil {
				return err
			}
			continue
		}
		line := fmt.Sprintf("%s %s", time.UnixMilli(env.OccurredAtUnixMs).Format("15:04:05"), env.Kind)
		if env.GroupID != "" {
			line += " " + env.GroupID
		}
		if env.Message != nil {
			line += fmt.Sprintf(" %s: %s", env.Message.SenderName, env.Message.Text)
		}
		fmt.Fprintln(c.out, line)
	}
}

// listSessions runs without a daemon; it only reads the session directories.
func listSessions(out io.Writer, jsonOut bool) error {
	infos, err := session.List()
	if err != nil {
		return err
	}
	c := &cli{json: jsonOut, out: out}
	return c.emit(infos, func(w io.Writer) {
		if len(infos) == 0 {
			fmt.Fprintln(w, "No sessions found.")
			return
		}
		for _, s := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Dir, onOff(s.HasSocket, "running", "stopped"))
		}
	})
}
