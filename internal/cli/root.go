package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/supersnake/pack/internal"
)

// Represents the root command for supersnake-pack.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Include source locations in log records."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Dir     string     `short:"C" help:"Project directory." default:"." type:"existingdir" placeholder:"DIR"`
	Config  string     `short:"c" help:"Settings file overriding the project layout." type:"existingfile" placeholder:"PATH"`
	Package PackageCmd `cmd:"" default:"1" help:"Build the game and package a release archive."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds supersnake in release mode and packages it as a versioned ZIP archive."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	internal.SetModes(RootCmd.Quiet, RootCmd.Debug, RootCmd.Verbose)
	slog.SetDefault(NewLogger(os.Stderr))

	return kongCtx.Run()
}

// Creates a text logger honouring the current output modes.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     Level(),
		AddSource: internal.IsVerbose(),
	})
	return slog.New(handler).WithGroup(internal.Name)
}

// Returns the log level for the current output modes.
//
// Debug takes precedence over quiet.
func Level() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
