package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/restspec/packages/builder"
	"github.com/abdul-hamid-achik/restspec/packages/config"
	resthttp "github.com/abdul-hamid-achik/restspec/packages/http"
)

var sendFlags struct {
	method      string
	headers     []string
	queryParams []string
	pathParams  []string
	body        string
	contentType string
	basicAuth   string
	bearer      string
	timeout     time.Duration
	insecure    bool
	configPath  string
	verbose     bool
	noColor     bool
}

var sendCmd = &cobra.Command{
	Use:   "send [flags] URL",
	Short: "Build and dispatch a single HTTP request",
	Example: `  restspec send https://api.example.com/items
  restspec send -X POST -d '{"name":"widget"}' https://api.example.com/items
  restspec send -p id=7 -q expand=comments https://api.example.com/items/{{id}}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if sendFlags.noColor {
			color.NoColor = true
		}

		client, err := buildClient()
		if err != nil {
			return err
		}

		b := builder.New(client)
		if err := applyFlags(b); err != nil {
			return err
		}

		resp, err := dispatch(b, strings.ToUpper(sendFlags.method), args[0])
		if err != nil {
			return err
		}

		printOutcome(cmd, resp)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendFlags.method, "method", "X", "GET", "HTTP method")
	sendCmd.Flags().StringArrayVarP(&sendFlags.headers, "header", "H", nil, "header as 'Key: Value' (repeatable)")
	sendCmd.Flags().StringArrayVarP(&sendFlags.queryParams, "query", "q", nil, "query parameter as key=value (repeatable)")
	sendCmd.Flags().StringArrayVarP(&sendFlags.pathParams, "path-param", "p", nil, "path parameter as key=value (repeatable)")
	sendCmd.Flags().StringVarP(&sendFlags.body, "data", "d", "", "request body")
	sendCmd.Flags().StringVar(&sendFlags.contentType, "content-type", "", "Content-Type header")
	sendCmd.Flags().StringVar(&sendFlags.basicAuth, "basic", "", "basic auth as user:password")
	sendCmd.Flags().StringVar(&sendFlags.bearer, "bearer", "", "bearer token")
	sendCmd.Flags().DurationVar(&sendFlags.timeout, "timeout", 0, "request timeout")
	sendCmd.Flags().BoolVarP(&sendFlags.insecure, "insecure", "k", false, "skip TLS certificate validation")
	sendCmd.Flags().StringVarP(&sendFlags.configPath, "config", "c", "", "client config file (json or yaml)")
	sendCmd.Flags().BoolVarP(&sendFlags.verbose, "verbose", "v", false, "print response headers")
	sendCmd.Flags().BoolVar(&sendFlags.noColor, "no-color", false, "disable colored output")
}

func buildClient() (*resthttp.Client, error) {
	var opts []resthttp.ClientOption

	if sendFlags.configPath != "" {
		cfg, err := config.Load(sendFlags.configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfg.ClientOptions()...)
	}

	if sendFlags.timeout > 0 {
		opts = append(opts, resthttp.WithTimeout(sendFlags.timeout))
	}
	if sendFlags.insecure {
		opts = append(opts, resthttp.WithValidateSSL(false))
	}

	return resthttp.NewClient(opts...), nil
}

func applyFlags(b *builder.Builder) error {
	for _, h := range sendFlags.headers {
		key, value, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("invalid header %q, want 'Key: Value'", h)
		}
		b.Header(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	for _, q := range sendFlags.queryParams {
		key, value, ok := strings.Cut(q, "=")
		if !ok {
			return fmt.Errorf("invalid query parameter %q, want key=value", q)
		}
		b.QueryParam(key, value)
	}

	for _, p := range sendFlags.pathParams {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("invalid path parameter %q, want key=value", p)
		}
		b.PathParam(key, value)
	}

	if sendFlags.contentType != "" {
		b.ContentType(sendFlags.contentType)
	}
	if sendFlags.basicAuth != "" {
		user, pass, _ := strings.Cut(sendFlags.basicAuth, ":")
		b.BasicAuth(user, pass)
	}
	if sendFlags.bearer != "" {
		b.OAuth2(sendFlags.bearer)
	}
	if sendFlags.body != "" {
		b.Body(sendFlags.body)
	}

	return nil
}

func dispatch(b *builder.Builder, method, endpoint string) (*resthttp.Response, error) {
	switch method {
	case "GET":
		return b.Get(endpoint)
	case "POST":
		return b.Post(endpoint)
	case "PUT":
		return b.Put(endpoint)
	case "PATCH":
		return b.Patch(endpoint)
	case "DELETE":
		return b.Delete(endpoint)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
}

func printOutcome(cmd *cobra.Command, resp *resthttp.Response) {
	out := cmd.OutOrStdout()

	statusColor := color.New(color.FgGreen)
	switch {
	case resp.IsRedirect():
		statusColor = color.New(color.FgYellow)
	case resp.IsClientError(), resp.IsServerError():
		statusColor = color.New(color.FgRed)
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", bold(statusColor.Sprint(resp.Status)), color.CyanString("(%dms)", resp.DurationMs()))

	if sendFlags.verbose {
		keys := make([]string, 0, len(resp.Headers))
		for k := range resp.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %s\n", color.CyanString(k), resp.Headers[k])
		}
		fmt.Fprintln(out)
	}

	if len(resp.Body) > 0 {
		fmt.Fprintln(out, resp.BodyString())
	}
}
