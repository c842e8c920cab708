/*
Package ledgerclient creates clients for the accounting platform API.

# Quick Start

	cli := ledgerclient.WithEnvironment("sbx").WithAPIKey(os.Getenv("LEDGER_API_KEY"))

	env, err := cli.Status().Ping(ctx)
	if err != nil {
	    // no HTTP response was obtained
	}
	if !env.Success {
	    // env.Error holds the platform's problem details
	}

# Configuration

New builds a client from a ledger.Config:

	cli, err := ledgerclient.New(ctx, &ledger.Config{
	    Environment:     ledger.EnvironmentProduction,
	    BearerToken:     token,
	    ApplicationName: "billing-sync",
	    HTTPTimeout:     30 * time.Second,
	})

# Custom Deployments

WithCustomURL points a client at any base URL, such as a proxy or a local
mock. Relative request paths join beneath it; paths starting with "/" replace
its path; absolute URLs are used as-is.
*/
package ledgerclient
