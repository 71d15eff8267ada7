package main

import (
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	agentmail "github.com/agent-mail/client-go"
)

func newSendCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	var (
		subject string
		body    string
		urgent  bool
		cc      []string
	)
	cmd := &cobra.Command{
		Use:   "send <recipient>...",
		Short: "Send a message to other agents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.buildClient()
			if err != nil {
				return err
			}
			result, err := client.Send(cmd.Context(), agentmail.SendParams{
				To:      args,
				Subject: subject,
				Body:    body,
				Urgent:  urgent,
				CC:      cc,
			})
			if err != nil {
				return err
			}
			return printJSON(out, result)
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "message subject")
	cmd.Flags().StringVarP(&body, "body", "b", "", "message body (Markdown)")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "mark as urgent")
	cmd.Flags().StringSliceVar(&cc, "cc", nil, "CC recipients")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newInboxCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	var (
		limit      int
		urgentOnly bool
		unreadOnly bool
		cursor     string
	)
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List message previews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.buildClient()
			if err != nil {
				return err
			}
			result, err := client.Inbox(cmd.Context(), agentmail.InboxParams{
				Limit:      limit,
				UrgentOnly: urgentOnly,
				UnreadOnly: unreadOnly,
				Cursor:     cursor,
			})
			if err != nil {
				return err
			}
			return printJSON(out, result)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum messages to return")
	cmd.Flags().BoolVar(&urgentOnly, "urgent-only", false, "urgent messages only")
	cmd.Flags().BoolVar(&unreadOnly, "unread-only", false, "unread messages only")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor from a previous page")
	return cmd
}

// messageIDArg parses the single message-id positional argument.
func messageIDArg(args []string) (int64, error) {
	return strconv.ParseInt(args[0], 10, 64)
}

func newReadCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	var leaveUnread bool
	cmd := &cobra.Command{
		Use:   "read <message-id>",
		Short: "Read a full message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := messageIDArg(args)
			if err != nil {
				return err
			}
			client, err := flags.buildClient()
			if err != nil {
				return err
			}
			msg, err := client.Read(cmd.Context(), agentmail.ReadParams{
				MessageID:   id,
				LeaveUnread: leaveUnread,
			})
			if err != nil {
				return err
			}
			return printJSON(out, msg)
		},
	}
	cmd.Flags().BoolVar(&leaveUnread, "leave-unread", false, "do not mark the message as read")
	return cmd
}

func newReplyCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	var (
		body    string
		subject string
	)
	cmd := &cobra.Command{
		Use:   "reply <message-id>",
		Short: "Reply to a message, preserving its thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := messageIDArg(args)
			if err != nil {
				return err
			}
			client, err := flags.buildClient()
			if err != nil {
				return err
			}
			result, err := client.Reply(cmd.Context(), agentmail.ReplyParams{
				MessageID: id,
				Body:      body,
				Subject:   subject,
			})
			if err != nil {
				return err
			}
			return printJSON(out, result)
		},
	}
	cmd.Flags().StringVarP(&body, "body", "b", "", "reply body (Markdown)")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "subject prefix override")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newAckCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "ack <message-id>",
		Short: "Acknowledge a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := messageIDArg(args)
			if err != nil {
				return err
			}
			client, err := flags.buildClient()
			if err != nil {
				return err
			}
			if err := client.Acknowledge(cmd.Context(), agentmail.AckParams{MessageID: id}); err != nil {
				return err
			}
			return printJSON(out, map[string]bool{"acknowledged": true})
		},
	}
}

func newDeleteCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <message-id>",
		Short: "Archive a message (best-effort)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := messageIDArg(args)
			if err != nil {
				return err
			}
			client, err := flags.buildClient()
			if err != nil {
				return err
			}
			if err := client.Delete(cmd.Context(), agentmail.DeleteParams{MessageID: id}); err != nil {
				return err
			}
			return printJSON(out, map[string]bool{"archived": true})
		},
	}
}

func newWatchCmd(flags *rootFlags, out io.Writer) *cobra.Command {
	var (
		from     string
		subject  string
		pattern  string
		urgent   bool
		timeout  time.Duration
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Wait for a matching message to arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.buildClient()
			if err != nil {
				return err
			}

			var opts []agentmail.WaitOption
			if from != "" {
				opts = append(opts, agentmail.WaitFrom(from))
			}
			if subject != "" {
				opts = append(opts, agentmail.WaitSubject(subject))
			}
			if pattern != "" {
				re, err := regexp.Compile(pattern)
				if err != nil {
					return err
				}
				opts = append(opts, agentmail.WaitSubjectRegex(re))
			}
			if urgent {
				opts = append(opts, agentmail.WaitUrgent())
			}
			if timeout > 0 {
				opts = append(opts, agentmail.WaitTimeout(timeout))
			}
			if interval > 0 {
				opts = append(opts, agentmail.WaitPollInterval(interval))
			}

			msg, err := client.WaitForMessage(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			return printJSON(out, msg)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "match sender")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "match exact subject")
	cmd.Flags().StringVar(&pattern, "subject-regex", "", "match subject by regex")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "match urgent messages only")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "total wait deadline")
	cmd.Flags().DurationVar(&interval, "poll-interval", 0, "inbox polling interval")
	return cmd
}
