package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aura-studio/hello/invokecli"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var invokeFlags struct {
	function  string
	qualifier string
	region    string
	event     string
	set       map[string]string
	field     string
	timeout   time.Duration
}

var invokeCommand = &cobra.Command{
	Use:   "invoke",
	Short: "Invoke the deployed function and print its envelope",
	Example: `  hello invoke -f hello-dev --set test=data
  hello invoke -f hello-dev --event '{"test":"data"}' --field timestamp`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(cmd.Context())
	},
}

func init() {
	flags := invokeCommand.Flags()
	flags.StringVarP(&invokeFlags.function, "function", "f", "", "function name or ARN")
	flags.StringVarP(&invokeFlags.qualifier, "qualifier", "q", "", "version or alias")
	flags.StringVarP(&invokeFlags.region, "region", "r", "", "AWS region (default: from the environment)")
	flags.StringVarP(&invokeFlags.event, "event", "e", "{}", "event JSON")
	flags.StringToStringVar(&invokeFlags.set, "set", nil, "path=value assignments applied to the event")
	flags.StringVar(&invokeFlags.field, "field", "", "print only this path of the response body")
	flags.DurationVar(&invokeFlags.timeout, "timeout", 30*time.Second, "invocation timeout")
	_ = invokeCommand.MarkFlagRequired("function")
}

func runInvoke(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var loadOpts []func(*config.LoadOptions) error
	if invokeFlags.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(invokeFlags.region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	event, err := invokecli.BuildEvent(invokeFlags.event, invokeFlags.set)
	if err != nil {
		return err
	}

	client := invokecli.NewClient(
		invokecli.WithLambdaClient(lambda.NewFromConfig(cfg)),
		invokecli.WithFunctionName(invokeFlags.function),
		invokecli.WithQualifier(invokeFlags.qualifier),
		invokecli.WithDefaultTimeout(invokeFlags.timeout),
	)

	env, err := client.Call(ctx, []byte(event))
	if err != nil {
		return err
	}
	log.WithField("status", env.StatusCode).Debug("invoked")

	if invokeFlags.field != "" {
		fmt.Println(gjson.Get(env.Body, invokeFlags.field).String())
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
