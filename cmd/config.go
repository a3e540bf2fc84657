package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pcawg2/payload-tools/pkg/config"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration in effect after applying the config file,
.env and environment overrides. Secrets are never printed.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Println(ui.FormatInfo("Config file: " + configPath))
	fmt.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		fmt.Println(ui.FormatWarning("Config already exists: " + configPath))
		fmt.Println(ui.FormatMuted("Use --force to overwrite"))
		return nil
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Config written: " + configPath))
	return nil
}
