// Package agentmail provides a Go client for the Agent Mail messaging
// service, a mailbox for automated agents coordinating through a shared
// server.
//
// The client reads its configuration from the environment (AGENT_MAIL_URL,
// AGENT_MAIL_NAME, AGENT_MAIL_TOKEN, AGENT_MAIL_PROJECT_ID) and scopes
// mailboxes per project workspace. Transient server failures are retried
// with exponential backoff; every failure surfaces as an *Error carrying
// one of seven stable codes.
//
// Basic usage:
//
//	client := agentmail.New()
//
//	sent, err := client.Send(ctx, agentmail.SendParams{
//	    To:      []string{"alice"},
//	    Subject: "Review PR",
//	    Body:    "Can you review PR #42?",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := client.Inbox(ctx, agentmail.InboxParams{UnreadOnly: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range page.Messages {
//	    fmt.Println(msg.From, msg.Subject)
//	}
package agentmail
