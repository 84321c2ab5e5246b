// Package domo provides the public types for the Domo API client:
// configuration, the Client interface and its per-resource sub-clients,
// typed models, the error taxonomy, pagination helpers, interceptors, and
// the response cache abstraction.
//
// Construct clients with the domoclient package:
//
//	client, err := domoclient.NewWithClientCredentials(ctx, clientID, clientSecret)
//	if err != nil {
//	    ...
//	}
//
//	ds, err := client.Datasets().Get(ctx, datasetID)
package domo
