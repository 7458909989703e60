package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"termfolio/internal/commands"
	"termfolio/internal/config"
	"termfolio/internal/files"
	"termfolio/internal/logging"
	"termfolio/internal/model"
	"termfolio/internal/terminal"
	"termfolio/internal/tui"
	"termfolio/internal/web"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "termfolio",
		Repository: "termfolio",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/termfolio/termfolio/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: termfolio [options]\n\n")
		fmt.Fprintf(os.Stderr, "termfolio is a portfolio site you browse with a shell.\n")
		fmt.Fprintf(os.Stderr, "It serves a content tree through a small terminal with cd, ls, cat and friends.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termfolio                    # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  termfolio --web              # Serve the browser terminal and file API\n")
		fmt.Fprintf(os.Stderr, "  termfolio -e 'ls -l'         # Run one command line and print the result\n")
		fmt.Fprintf(os.Stderr, "  termfolio -c site.toml       # Use a configuration file\n")
	}

	configFlag := pflag.StringP("config", "c", "", "Configuration file (.toml, .yaml or .yml)")
	rootFlag := pflag.String("root", "", "Content root directory (overrides config)")
	remoteFlag := pflag.String("remote", "", "Base URL of a remote file API (overrides config)")
	listenFlag := pflag.String("listen", "", "Listen address for web mode (overrides config)")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	execFlag := pflag.StringP("exec", "e", "", "Run a command line and exit")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("termfolio version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *rootFlag != "" {
		cfg.Root = config.ExpandHome(*rootFlag)
	}
	if *remoteFlag != "" {
		cfg.Remote = *remoteFlag
	}
	if *listenFlag != "" {
		cfg.Listen = *listenFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the screen, so it logs to a file.
	logFile := ""
	if !*webFlag && *execFlag == "" {
		logFile = cfg.LogFile
	}
	closeLog, err := logging.Setup(cfg.LogLevel, logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg)

	switch {
	case *webFlag:
		err = runWebMode(ctx, app)
	case pflag.Lookup("exec").Changed:
		err = runExecMode(ctx, app, *execFlag)
	default:
		err = runTuiMode(ctx, app)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app wires the configuration into the terminal core.
type app struct {
	cfg   config.Config
	files files.Service
}

func newApp(cfg config.Config) *app {
	var svc files.Service = files.NewLocal(cfg.Root)
	if cfg.Remote != "" {
		svc = files.NewRemote(cfg.Remote, nil)
	}
	return &app{cfg: cfg, files: svc}
}

// newTerminal creates a terminal whose windows go to the given opener.
func (a *app) newTerminal(windows commands.WindowOpener) (*terminal.Terminal, error) {
	opts := commands.Options{
		Files:   a.files,
		Windows: windows,
		Settings: commands.Settings{
			Author:             a.cfg.Author,
			Repository:         a.cfg.Repository,
			DocumentExtensions: a.cfg.DocumentExtensions,
		},
	}
	if a.cfg.ContactURL != "" {
		opts.Contact = commands.NewContactClient(a.cfg.ContactURL)
	}

	d, err := commands.New(opts)
	if err != nil {
		return nil, err
	}
	return terminal.New(d, terminal.Options{HistoryLimit: a.cfg.HistoryLimit}), nil
}

func runWebMode(ctx context.Context, a *app) error {
	server := web.NewServer(a.files, a.newTerminal, web.Options{Welcome: a.cfg.Welcome})
	return web.ListenAndServe(ctx, a.cfg.Listen, server)
}

func runExecMode(ctx context.Context, a *app, line string) error {
	term, err := a.newTerminal(commands.WindowFunc(func(w model.Window) {
		if w.Kind == model.WindowTextViewer {
			fmt.Print(w.Content)
			return
		}
		fmt.Println(w.URL)
	}))
	if err != nil {
		return err
	}

	if err := term.Init(ctx); err != nil {
		return err
	}
	term.Run(ctx, term.Submit(line))
	for _, e := range term.Entries() {
		for _, l := range terminal.Layout(e.Result.Output, 0, nil) {
			fmt.Println(l)
		}
	}
	if term.PromptError() {
		os.Exit(1)
	}
	return nil
}

func runTuiMode(ctx context.Context, a *app) error {
	opener := tui.NewChannelOpener()
	term, err := a.newTerminal(opener)
	if err != nil {
		return err
	}

	m := tui.InitialModel(ctx, term, tui.Options{
		Files:              a.files,
		Windows:            opener,
		Welcome:            a.cfg.Welcome,
		DocumentExtensions: a.cfg.DocumentExtensions,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
