// Package ledger provides types, interfaces, and helpers for working with the
// accounting platform API.
//
// # Overview
//
// The ledger package defines the response envelope, the error payload, the
// typed request headers, the domain models (companies, invoices, payments,
// attachments, webhooks, syncs), and the interfaces of the resource clients.
// A concrete client is built by the ledgerclient package. Most consumers
// import ledgerclient to construct a client and then use the resource client
// interfaces declared here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/ledger-client/pkg/ledger"
//	  "github.com/fivetwenty-io/ledger-client/pkg/ledgerclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli := ledgerclient.WithEnvironment(ledger.EnvironmentSandbox).WithAPIKey("my-key")
//
//	  env, err := cli.Invoices().Query(ctx, ledger.NewQueryOptions().WithPageSize(50))
//	  if err != nil { log.Fatal(err) } // no HTTP response at all
//	  if !env.Success { log.Fatal(env.Error) } // the API said no
//	  _ = env.Value.Records
//	}
//
// # Envelopes
//
// Every call that reaches the server returns an Envelope, whatever the status
// code. Success is true exactly for 2xx responses, in which case Value is
// set; otherwise Error holds the decoded ErrorResult. A non-nil error return
// means no HTTP response was obtained: the network failed, the custom header
// function failed, or a file to upload could not be read.
//
// # Calls without a resource client
//
// Send, Upload, and Download run any call through a client's Transport:
//
//	env, err := ledger.Send[ledger.CompanyModel](ctx, cli.Transport(),
//	  http.MethodGet, "/api/v1/Companies/"+id.String(), nil, nil)
//
// # Headers
//
// Each request carries SdkName, SdkVersion, MachineName, the optional
// ApplicationName, and either "Authorization: Bearer <token>" or "ApiKey".
// A HeaderFunc installed with WithCustomHeaderFunc sees that set last and has
// the final say, including removing credentials.
//
// # Queries and pagination
//
// QueryOptions expresses filter, include, order, and paging. FetchAllPages
// walks every page of a query.
package ledger
