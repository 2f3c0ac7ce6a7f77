// A2UI backend - entry point
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/matiasleandrokruk/a2ui/internal/a2ui"
	"github.com/matiasleandrokruk/a2ui/internal/api"
	"github.com/matiasleandrokruk/a2ui/internal/api/handlers"
	"github.com/matiasleandrokruk/a2ui/internal/chat"
	"github.com/matiasleandrokruk/a2ui/internal/infra/config"
	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
	"github.com/matiasleandrokruk/a2ui/internal/infra/search"
	"github.com/matiasleandrokruk/a2ui/internal/infra/sqlite"
	"github.com/matiasleandrokruk/a2ui/internal/mcpserver"
	"github.com/matiasleandrokruk/a2ui/internal/server"
	"github.com/matiasleandrokruk/a2ui/internal/usage"
	"github.com/matiasleandrokruk/a2ui/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("a2ui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	addr := fs.String("addr", "", "Listen address (overrides A2UI_ADDR)")
	configPath := fs.String("config", "", "Path to YAML configuration file")
	mcpMode := fs.Bool("mcp", false, "Serve the MCP tool over stdio instead of HTTP")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	cfg := config.Load()
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			fmt.Fprintf(out, "Config error: %v\n", err) //nolint:errcheck
			return 1
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	registry, generator := buildGenerator(cfg)

	if *mcpMode {
		return runMCP(generator)
	}

	return runHTTP(out, cfg, registry, generator)
}

// buildGenerator wires the provider registry, the search backend, and the
// deterministic responder into the orchestrator. Providers without
// credentials are registered anyway: the registry reports them
// unavailable and the orchestrator degrades to the mock route.
func buildGenerator(cfg config.Config) (*llm.Registry, *chat.Service) {
	registry := llm.NewRegistry(
		llm.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, catalogModels(cfg, "openai")...),
		llm.NewAnthropicProvider(cfg.AnthropicKey, catalogModels(cfg, "anthropic")...),
		llm.NewGeminiProvider(cfg.GeminiKey, catalogModels(cfg, "gemini")...),
	)

	var searchBackend search.Backend
	if cfg.TavilyKey.Present {
		searchBackend = search.NewTavilyClient(cfg.TavilyKey)
	}

	return registry, chat.NewService(registry, searchBackend, a2ui.MockResponder{})
}

func catalogModels(cfg config.Config, providerID string) []llm.ModelOption {
	opts := cfg.Models[providerID]
	models := make([]llm.ModelOption, len(opts))
	for i, opt := range opts {
		models[i] = llm.ModelOption{ID: opt.ID, Name: opt.Name}
	}
	return models
}

func runHTTP(out io.Writer, cfg config.Config, registry *llm.Registry, generator *chat.Service) int {
	var (
		db       *sql.DB
		usageLog handlers.UsageLogger
	)
	if cfg.DBPath != "" {
		var err error
		db, err = sqlite.NewDB(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(out, "Database error: %v\n", err) //nolint:errcheck
			return 1
		}
		if err := sqlite.MigrateUp(db); err != nil {
			fmt.Fprintf(out, "Migration error: %v\n", err) //nolint:errcheck
			return 1
		}
		usageLog = usage.NewService(db)
	}

	router := api.NewRouter(registry, generator, usageLog)

	serverCfg := server.DefaultConfig()
	serverCfg.Addr = cfg.Addr
	srv := server.NewServer(router, db, serverCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(out, "Shutdown error: %v\n", err) //nolint:errcheck
			return 1
		}
		return 0
	case err := <-errCh:
		fmt.Fprintf(out, "Server error: %v\n", err) //nolint:errcheck
		return 1
	}
}

func runMCP(generator *chat.Service) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := mcpserver.New(version.Version, generator)
	if err := s.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}

func printHelp(out io.Writer) {
	helpText := `A2UI backend - LLM-driven UI document generation

Usage:
  a2ui [options]

Options:
  --version        Show version information
  --help           Show this help message
  --addr ADDR      Listen address (overrides A2UI_ADDR, default :8000)
  --config PATH    YAML configuration file
  --mcp            Serve the generate_ui MCP tool over stdio

Environment:
  OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY  provider credentials
  TAVILY_API_KEY                                     web search credential
  OPENAI_BASE_URL                                    OpenAI-compatible endpoint
  A2UI_ADDR                                          listen address
  A2UI_DB                                            usage log path (empty disables)

Examples:
  a2ui --addr :8000
  a2ui --config config.yaml
  a2ui --mcp`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
