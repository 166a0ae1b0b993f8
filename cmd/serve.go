package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/api"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *root.config
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(&cfg))

			go func() {
				<-cmd.Context().Done()
				logrus.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logrus.WithError(err).Error("shutdown failed")
				}
			}()

			logrus.Infof("listening on :%d", cfg.Port)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	return cmd
}
