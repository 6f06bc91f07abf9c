package gateway

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"roadtrip/internal/agent"
	"roadtrip/internal/config"
	gw "roadtrip/internal/gateway"
	"roadtrip/internal/history"
	"roadtrip/internal/llm"
	"roadtrip/internal/prompts"
	"roadtrip/internal/session"
	"roadtrip/internal/tools"
	"roadtrip/internal/trace"
)

var addr string

var Cmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the HTTP gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if addr != "" {
			cfg.Gateway.Addr = addr
		}

		ctx := cmd.Context()

		if cfg.Trace.Endpoint != "" {
			shutdown, err := trace.Init(ctx, trace.Config(cfg.Trace))
			if err != nil {
				return fmt.Errorf("initializing tracing: %w", err)
			}
			defer shutdown(ctx)
		}

		store, err := history.Open(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening run log: %w", err)
		}
		defer store.Close()

		toolset := tools.New(tools.Config{
			MapsAPIKey:  cfg.Providers.MapsAPIKey,
			CSEID:       cfg.Providers.CSEID,
			CSEKey:      cfg.Providers.CSEKey,
			BraveAPIKey: cfg.Providers.BraveAPIKey,
		})
		defer toolset.Close()

		registry := agent.NewRegistry()
		for _, t := range toolset.All() {
			registry.Register(t)
		}

		provider := llm.NewOpenAI(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
		runner := agent.NewRunner(provider, registry, agent.WithSystemPrompt(prompts.Copilot))
		sessions := session.NewManager(session.NewInMemoryService(), cfg.AppName)

		srv := gw.NewServer(runner, sessions, store)
		slog.Info("starting gateway", "addr", cfg.Gateway.Addr)
		return srv.ListenAndServe(cfg.Gateway.Addr)
	},
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "override gateway listen address")
}
