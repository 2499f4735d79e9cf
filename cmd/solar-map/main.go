package main

import (
	"os"

	"github.com/spf13/cobra"

	"solar-map/configs"
	"solar-map/internal/domain/service/solar"
	"solar-map/pkg/log"
	"solar-map/pkg/msg"
	"solar-map/pkg/resource"
)

// @title Solar Map API
// @version 1.0
// @description Russian cities, rooftop solar potential and map layers.
// @BasePath /
func main() {
	defer log.Sync()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	env := configs.LoadEnv()

	root := &cobra.Command{
		Use:           "solar-map",
		Short:         "Russian cities solar potential map service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := resource.Init(env.ApplicationFile()); err != nil {
				return err
			}
			if err := msg.Init(env.MessagesFile()); err != nil {
				return err
			}
			log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&env.ConfigDir, "config-dir", env.ConfigDir, "directory holding application.yml and messages.yml")

	root.AddCommand(serveCmd(env))
	root.AddCommand(citiesCmd())
	root.AddCommand(estimateCmd())
	root.AddCommand(validateCmd())
	return root
}

func serveCmd(env *configs.EnvConfig) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if port != "" {
				resource.Set("app.server.port", port)
			}
			return runServe(env)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP server port, overrides app.server.port")
	return cmd
}

func citiesCmd() *cobra.Command {
	var alphabetical bool

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List the cities of the registry with their solar tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCities(cmd.OutOrStdout(), alphabetical)
		},
	}

	cmd.Flags().BoolVarP(&alphabetical, "alphabetical", "a", false, "sort names with Russian collation")
	return cmd
}

func estimateCmd() *cobra.Command {
	var area, efficiency float64

	cmd := &cobra.Command{
		Use:   "estimate [city]",
		Short: "Print the rooftop solar potential of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.OutOrStdout(), args[0], area, efficiency)
		},
	}

	cmd.Flags().Float64Var(&area, "area", solar.DefaultPanelArea, "panel area in m²")
	cmd.Flags().Float64Var(&efficiency, "efficiency", solar.DefaultEfficiency, "panel efficiency in (0, 1]")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [registry-file]",
		Short: "Check a city registry YAML file without starting the service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}
