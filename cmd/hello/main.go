// Command hello is the bootstrap binary of the function. Without
// arguments it serves the handler in the mode lambda.yaml selects; the
// invoke subcommand calls a deployed copy of it.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aura-studio/hello/greet"
	"github.com/aura-studio/hello/localserver"
	"github.com/aura-studio/hello/server"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("scope", "hello.cmd")

var rootFlags struct {
	config  string
	mode    string
	address string
	debug   bool
}

var rootCommand = &cobra.Command{
	Use:           "hello",
	Short:         "Serve the hello handler",
	Long:          "Serve the hello handler inside the Lambda runtime or behind a local HTTP emulator",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Serve(serveOptions()...)
	},
}

func serveOptions() []server.Option {
	var opts []server.Option

	if rootFlags.config != "" {
		opts = append(opts, server.WithServeConfigFile(rootFlags.config))
	} else {
		opts = append(opts, server.WithDefaultServeConfigFile())
	}
	if rootFlags.mode != "" {
		opts = append(opts, server.WithMode(rootFlags.mode))
	}
	if rootFlags.address != "" {
		opts = append(opts, server.WithHttpOptions(localserver.WithAddress(rootFlags.address)))
	}
	if rootFlags.debug {
		opts = append(opts,
			server.WithGreetOptions(greet.WithDebugMode()),
			server.WithHttpOptions(localserver.WithDebugMode()),
		)
	}

	return opts
}

func init() {
	flags := rootCommand.Flags()
	flags.StringVarP(&rootFlags.config, "config", "c", "", "path to lambda.yaml (default: search well-known locations)")
	flags.StringVarP(&rootFlags.mode, "mode", "m", "", "run mode: lambda or http")
	flags.StringVarP(&rootFlags.address, "address", "a", "", "listen address in http mode")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "log responses and enable gin debug mode")

	rootCommand.AddCommand(invokeCommand)
}

func main() {
	// a missing .env is the normal case inside Lambda
	_ = godotenv.Load()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		if err := server.Close(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := rootCommand.Execute(); err != nil {
		log.Fatal(err)
	}
}
