package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"roadtrip/internal/config"
)

const template = `app_name = "roadtrip_app"
dedupe_final = false

[llm]
model = "minimax/minimax-m2:free"
base_url = "https://openrouter.ai/api/v1"
api_key = ""

[providers]
maps_api_key = ""
cse_id = ""
cse_key = ""
brave_api_key = ""

[gateway]
addr = ":8585"
`

var Cmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path()
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("config already exists at %s\n", path)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(template), 0o600); err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}
