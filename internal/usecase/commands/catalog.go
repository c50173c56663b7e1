package commands

import (
	"context"
	"strings"

	"squadBot/internal/domain"
)

// CommandDescriptor describes a builtin command for listings.
type CommandDescriptor struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
}

// BuiltinCommandCatalog lists the commands shipped with the bot.
func BuiltinCommandCatalog() []CommandDescriptor {
	return []CommandDescriptor{
		{
			Name:        "sq",
			Aliases:     []string{"squad"},
			Description: "Splits everyone in your voice channel into random teams.",
			Usage:       "!sq <duo|trio|squad> !<name to exclude> <name to add>",
		},
		{
			Name:        "ping",
			Description: "Replies with pong to check the bot is alive.",
			Usage:       "!ping",
		},
		{
			Name:        "commands",
			Aliases:     []string{"help"},
			Description: "Lists the available commands.",
			Usage:       "!commands",
		},
	}
}

type CommandsCommand struct{}

func NewCommandsCommand() *CommandsCommand {
	return &CommandsCommand{}
}

func (c *CommandsCommand) Name() string {
	return "commands"
}

func (c *CommandsCommand) Aliases() []string {
	return []string{"help"}
}

func (c *CommandsCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *CommandsCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	lines := make([]string, 0, len(BuiltinCommandCatalog()))
	for _, item := range BuiltinCommandCatalog() {
		lines = append(lines, item.Usage+" - "+item.Description)
	}
	return cmdCtx.Reply(ctx, strings.Join(lines, "\n"))
}
