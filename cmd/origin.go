package cmd

import (
	"fmt"

	"cdn-manager/feature/origin"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// originCmd reconciles one origin.
var originCmd = &cobra.Command{
	Use:   "origin",
	Short: "Create, update or delete a CDN origin",
	Long: `Converges one StrikeTracker origin to the given attributes.

The origin is looked up by --id, or by --hostname when no id is given or the id
does not exist. Only attributes passed on the command line are compared.

Examples:
  # Ensure an origin exists
  origin --hostname origin.example.com --port 80 --path / --name web

  # Preview the change and show before/after
  origin --id 1234 --port 8080 --hostname origin.example.com --path / --check --diff

  # Remove an origin
  origin --hostname origin.example.com --state absent

  # Send a raw JSON document as the desired state
  origin --config '{"hostname":"origin.example.com","port":80,"path":"/"}'`,
	Args: cobra.NoArgs,
	RunE: runOrigin,
}

func init() {
	registerOriginFlags(originCmd.Flags())
	RootCmd.AddCommand(originCmd)
}

func registerOriginFlags(f *pflag.FlagSet) {
	f.Int64("id", 0, "Origin ID")
	f.String("name", "", "Origin name")
	f.String("hostname", "", "Origin hostname")
	f.String("host", "", "Alias of --hostname")
	f.Int("port", 0, "Origin HTTP port")
	f.String("type", origin.DefaultType, "Origin type")
	f.String("path", "", "Origin path")
	f.String("uri", "", "Alias of --path")
	f.String("origin-pull-headers", "", "Headers sent on origin pulls")
	f.String("origin-cache-headers", "", "Cache headers added by the origin")
	f.String("certificate-cn", "", "Expected certificate common name")
	f.Int("request-timeout-seconds", 0, "Origin request timeout")
	f.Int("error-cache-ttl-seconds", 0, "How long origin errors are cached")
	f.Int("max-retry-count", 0, "Retries on origin failure")
	f.Int("secure-port", 0, "Origin HTTPS port")
	f.Int("maximum-origin-pull-seconds", 0, "Maximum duration of an origin pull")
	f.Int("max-requests-per-connection", 0, "Requests per origin connection")
	f.Int("max-connections-per-edge", 0, "Connections per edge server")
	f.Bool("max-connections-per-edge-enabled", false, "Enable the per edge connection limit")
	f.Bool("verify-certificate", false, "Verify the origin certificate")
	f.String("basic-username", "", "Basic auth user sent to the origin")
	f.String("auth-username", "", "Alias of --basic-username")
	f.String("basic-password", "", "Basic auth password sent to the origin")
	f.String("auth-password", "", "Alias of --basic-password")
	f.String("authentication-type", origin.AuthenticationNone, "Origin authentication (NONE, BASIC)")
	f.String("state", "present", "Desired state (present, absent)")
	f.String("config", "", "Raw JSON desired state; overrides every attribute flag")
	f.Bool("check", false, "Report what would change without changing it")
	f.Bool("diff", false, "Include before and after projections")
}

func runOrigin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	opts, err := originOptions(cmd.Flags())
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	client, err := rt.apiClient()
	if err != nil {
		return err
	}
	svc, err := rt.originService(ctx, client)
	if err != nil {
		return err
	}

	report, runErr := svc.Reconcile(ctx, opts)
	if err := rt.render(ctx, report); err != nil {
		rt.logger.Error("Failed to render result", zap.Error(err))
	}
	if runErr != nil {
		return fmt.Errorf("an error occurred during origin reconciliation: %w", runErr)
	}
	return nil
}

// flagReader collects the flags that were set and remembers the first error.
type flagReader struct {
	f   *pflag.FlagSet
	err error
}

// readFlag returns a pointer to the flag value, or nil when the flag was not set.
func readFlag[T any](r *flagReader, name string, get func(string) (T, error)) *T {
	if r.err != nil || !r.f.Changed(name) {
		return nil
	}
	v, err := get(name)
	if err != nil {
		r.err = err
		return nil
	}
	return &v
}

// originOptions turns the flags that were set into Options. Flags left at
// their default stay unset; Options applies the type and authentication-type
// defaults itself.
func originOptions(f *pflag.FlagSet) (origin.Options, error) {
	r := &flagReader{f: f}

	opts := origin.Options{
		ID:                           readFlag(r, "id", f.GetInt64),
		Name:                         readFlag(r, "name", f.GetString),
		Hostname:                     readFlag(r, "hostname", f.GetString),
		Host:                         readFlag(r, "host", f.GetString),
		Port:                         readFlag(r, "port", f.GetInt),
		Type:                         readFlag(r, "type", f.GetString),
		Path:                         readFlag(r, "path", f.GetString),
		URI:                          readFlag(r, "uri", f.GetString),
		OriginPullHeaders:            readFlag(r, "origin-pull-headers", f.GetString),
		OriginCacheHeaders:           readFlag(r, "origin-cache-headers", f.GetString),
		CertificateCN:                readFlag(r, "certificate-cn", f.GetString),
		RequestTimeoutSeconds:        readFlag(r, "request-timeout-seconds", f.GetInt),
		ErrorCacheTTLSeconds:         readFlag(r, "error-cache-ttl-seconds", f.GetInt),
		MaxRetryCount:                readFlag(r, "max-retry-count", f.GetInt),
		SecurePort:                   readFlag(r, "secure-port", f.GetInt),
		MaximumOriginPullSeconds:     readFlag(r, "maximum-origin-pull-seconds", f.GetInt),
		MaxRequestsPerConnection:     readFlag(r, "max-requests-per-connection", f.GetInt),
		MaxConnectionsPerEdge:        readFlag(r, "max-connections-per-edge", f.GetInt),
		MaxConnectionsPerEdgeEnabled: readFlag(r, "max-connections-per-edge-enabled", f.GetBool),
		VerifyCertificate:            readFlag(r, "verify-certificate", f.GetBool),
		AuthenticationType:           readFlag(r, "authentication-type", f.GetString),
	}

	opts.Username = readFlag(r, "basic-username", f.GetString)
	if opts.Username == nil {
		opts.Username = readFlag(r, "auth-username", f.GetString)
	}
	opts.Password = readFlag(r, "basic-password", f.GetString)
	if opts.Password == nil {
		opts.Password = readFlag(r, "auth-password", f.GetString)
	}
	if r.err != nil {
		return opts, r.err
	}

	opts.State, _ = f.GetString("state")
	opts.Config, _ = f.GetString("config")
	opts.Check, _ = f.GetBool("check")
	opts.Diff, _ = f.GetBool("diff")
	return opts, nil
}
