// Package domoclient provides the primary entry point for constructing a
// Domo API client that implements the domo.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the domo package. Most
// applications should import domoclient to build a client, then use the
// returned domo.Client to access resource-specific clients, for example
// Datasets(), Users(), Streams(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/domo-community/domo-go/pkg/domo"
//	  "github.com/domo-community/domo-go/pkg/domoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // OAuth2 client credentials against the public API:
//	  cli, err := domoclient.New(&domo.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a long-lived developer token against the instance API, which
//	  // also unlocks internal UI endpoints (search, extended dataset
//	  // operations):
//	  cli, err = domoclient.New(&domo.Config{
//	    DeveloperToken: "token",
//	    InstanceDomain: "acme.domo.com",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the domo.Client interface
//	  datasets, err := cli.Datasets().List(ctx, &domo.ListOptions{Limit: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewFromEnv,
// NewWithClientCredentials, and NewWithDeveloperToken that wrap New with
// the appropriate configuration.
package domoclient
