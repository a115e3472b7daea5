package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/convert"
	"github.com/pagemark/pagemark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Links     pagemark.LinkService
	Converter *convert.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Convert ConvertCmd `cmd:"" help:"Convert URLs to markdown"`
	List    ListCmd    `cmd:"" help:"List processed links"`
	Show    ShowCmd    `cmd:"" help:"Show a processed link's markdown"`
	Export  ExportCmd  `cmd:"" help:"Export completed results as markdown files"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a processed link"`
	Clear   ClearCmd   `cmd:"" help:"Delete all processed links"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	URLs         []string `arg:"" help:"Article or video URLs to convert"`
	Output       string   `short:"o" help:"Directory to write one markdown file per result"`
	Combined     string   `help:"Write all results as one file with the given name (requires --output)"`
	Concurrency  int      `short:"c" default:"4" help:"Concurrent conversion limit"`
	RateLimit    float64  `name:"rate-limit" help:"Max direct requests per second (0 = unlimited)"`
	Proxy        string   `env:"PAGEMARK_PROXY" help:"Relay base URL for proxied page fetches"`
	YoutubeProxy string   `env:"PAGEMARK_YOUTUBE_PROXY" name:"youtube-proxy" help:"Delegated transcript relay URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `help:"Filter by status (processing, completed, error)"`
	Limit  int    `help:"Maximum number of links to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Link ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output   string `arg:"" help:"Directory to write markdown files to"`
	Combined string `help:"Write all results as one file with the given name"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Link ID"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm deletion of all links"`
}
