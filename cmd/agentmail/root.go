package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	agentmail "github.com/agent-mail/client-go"
)

// rootFlags are the persistent connection flags shared by every command.
type rootFlags struct {
	url        string
	agent      string
	token      string
	project    string
	configPath string
	timeout    time.Duration
	retries    int
}

// fileConfig mirrors the optional TOML config file. Flags and environment
// variables take precedence over it.
type fileConfig struct {
	URL     string `toml:"url"`
	Agent   string `toml:"agent"`
	Token   string `toml:"token"`
	Project string `toml:"project"`
	Retries *int   `toml:"retries"`
}

// defaultConfigPath is ~/.config/agent-mail/config.toml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "agent-mail", "config.toml")
}

// loadFileConfig reads the config file at path, ignoring a missing default
// file but failing on a broken one.
func loadFileConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// buildClient assembles a client. Precedence per setting: flag, then
// environment (handled inside the client), then config file.
func (f *rootFlags) buildClient() (*agentmail.Client, error) {
	explicit := f.configPath != ""
	path := f.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	file, err := loadFileConfig(path, explicit)
	if err != nil {
		return nil, err
	}

	var opts []agentmail.Option
	pick := func(flag, env, file string, opt func(string) agentmail.Option) {
		switch {
		case flag != "":
			opts = append(opts, opt(flag))
		case os.Getenv(env) != "":
			// Client reads it from the environment.
		case file != "":
			opts = append(opts, opt(file))
		}
	}
	pick(f.url, agentmail.EnvURL, file.URL, agentmail.WithBaseURL)
	pick(f.agent, agentmail.EnvAgentName, file.Agent, agentmail.WithAgentName)
	pick(f.token, agentmail.EnvToken, file.Token, agentmail.WithToken)
	pick(f.project, agentmail.EnvProjectID, file.Project, agentmail.WithProjectKey)

	if f.retries >= 0 {
		opts = append(opts, agentmail.WithRetries(f.retries))
	} else if file.Retries != nil {
		opts = append(opts, agentmail.WithRetries(*file.Retries))
	}
	if f.timeout > 0 {
		opts = append(opts, agentmail.WithTimeout(f.timeout))
	}

	return agentmail.New(opts...), nil
}

// printJSON writes v to out as indented JSON.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newRootCmd builds the agentmail command tree.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "agentmail",
		Short:         "Send and receive Agent Mail messages",
		Long:          "agentmail talks to an Agent Mail server over HTTP.\n\nConfiguration comes from flags, AGENT_MAIL_* environment variables, or\n~/.config/agent-mail/config.toml, in that order.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.url, "url", "", "Agent Mail server base URL")
	pf.StringVar(&flags.agent, "agent", "", "agent name")
	pf.StringVar(&flags.token, "token", "", "bearer auth token")
	pf.StringVar(&flags.project, "project", "", "project key override")
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/agent-mail/config.toml)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-attempt request timeout")
	pf.IntVar(&flags.retries, "retries", -1, "retries after the first attempt")

	root.AddCommand(
		newSendCmd(flags, stdout),
		newInboxCmd(flags, stdout),
		newReadCmd(flags, stdout),
		newReplyCmd(flags, stdout),
		newAckCmd(flags, stdout),
		newDeleteCmd(flags, stdout),
		newWatchCmd(flags, stdout),
	)
	return root
}
