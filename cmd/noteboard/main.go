package main

import (
	"context"
	"crypto/sha256"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"text/tabwriter"
	"time"

	"noteboard/internal/app"
	"noteboard/internal/client"
	"noteboard/internal/config"
	"noteboard/internal/daemon"
	"noteboard/internal/logging"
	"noteboard/internal/store"
	"noteboard/internal/types"
)

const usageText = `noteboard is a dashboard of note cards over a local daemon.

Usage:
  noteboard <command> [flags]

Commands:
  ui       run the terminal dashboard (default)
  daemon   run the background daemon
  ls       list notes
  config   print the effective configuration
  help     show help

Daemon flags:
  --background    run in background (logs to file)
  --force         stop any running daemon before starting
  --kill          stop any running daemon and exit

Examples:
  noteboard
  noteboard ls
  noteboard daemon --background
`

const version = "dev"

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOnErr("ui", runUI(nil))
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	case "ui":
		exitOnErr("ui", runUI(args[1:]))
	case "daemon":
		exitOnErr("daemon", runDaemonCommand(args[1:]))
	case "ls":
		exitOnErr("ls", runLS(args[1:]))
	case "config":
		exitOnErr("config", runConfig(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c, err := client.New()
	if err != nil {
		return err
	}
	if err := c.EnsureDaemon(context.Background()); err != nil {
		return err
	}
	return app.Run(c, cfg, logging.Nop())
}

func runDaemonCommand(args []string) error {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	background := fs.Bool("background", false, "run in background (logs to file)")
	kill := fs.Bool("kill", false, "stop any running daemon and exit")
	force := fs.Bool("force", false, "stop any running daemon before starting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *kill {
		return killDaemon()
	}
	if *force {
		if err := killDaemon(); err != nil {
			return err
		}
	}
	return runDaemon(*background)
}

func runDaemon(background bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logOut := io.Writer(os.Stderr)
	if background {
		if logPath, err := config.ServerLogPath(); err == nil {
			if dataDir, err := config.DataDir(); err == nil && os.MkdirAll(dataDir, 0o700) == nil {
				if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
					defer file.Close()
					logOut = file
				}
			}
		}
	}
	log := logging.New(logOut, logging.ParseLevel(cfg.Logging.Level))

	tokenPath, err := config.TokenPath()
	if err != nil {
		return err
	}
	token, err := daemon.LoadOrCreateToken(tokenPath)
	if err != nil {
		return err
	}

	dbPath, err := config.DBPath()
	if err != nil {
		return err
	}
	repo, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	d := daemon.New(cfg.ServerAddress(), token, buildVersion(), repo, log)
	return d.Run(ctx)
}

func killDaemon() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := client.New()
	if err != nil {
		return err
	}
	if err := c.ShutdownDaemon(ctx); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil
		}
		if _, healthErr := c.Health(ctx); healthErr != nil {
			return nil
		}
		return err
	}
	return nil
}

func runLS(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	c, err := client.New()
	if err != nil {
		return err
	}
	if err := c.EnsureDaemon(ctx); err != nil {
		return err
	}
	notes, err := c.ListNotes(ctx)
	if err != nil {
		return err
	}
	printNotes(notes)
	return nil
}

func runConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rendered, err := cfg.Render()
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

func printNotes(notes []types.Note) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tDATE\tCATEGORY\tTITLE")
	for _, note := range notes {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", note.ID, note.Date, note.CategoryOrDefault(), note.Title)
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
