package trip

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"roadtrip/internal/agent"
	"roadtrip/internal/config"
	"roadtrip/internal/copilot"
	"roadtrip/internal/history"
	"roadtrip/internal/llm"
	"roadtrip/internal/prompts"
	"roadtrip/internal/session"
	"roadtrip/internal/tools"
	"roadtrip/internal/trace"
)

var (
	prompt string
	userID string
)

var Cmd = &cobra.Command{
	Use:   "trip",
	Short: "Plan one trip from a single prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
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

		registry := agent.NewRegistry()
		for _, t := range toolset.All() {
			registry.Register(t)
		}

		provider := llm.NewOpenAI(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
		runner := agent.NewRunner(provider, registry, agent.WithSystemPrompt(prompts.Copilot))
		sessions := session.NewManager(session.NewInMemoryService(), cfg.AppName)

		c := copilot.New(runner, sessions, toolset,
			copilot.WithHistory(store),
			copilot.WithDedupe(cfg.DedupeFinal),
		)

		text, err := c.RunPrompt(ctx, prompt, userID)
		if err != nil {
			return err
		}

		fmt.Println()
		slog.Info("trip planned", "user_id", userID, "response_bytes", len(text))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&prompt, "prompt", "p", "Plan a 2-day healing scenic road trip from Bangalore to Coorg. Mood = heartbreak.", "trip request")
	Cmd.Flags().StringVarP(&userID, "user", "u", "demo_user", "user id for the session")
}
