// Package direct provides a client for the Yandex Direct API version 5.
//
// The API is a JSON service where every call is an HTTP POST to a
// per-service endpoint (campaigns, adgroups, ads, bids) carrying a
// {"method": ..., "params": ...} envelope, authorized with an OAuth
// bearer token and a Client-Login header.
//
// # Usage
//
// Create a client with the advertiser login, an OAuth token and a limit
// on concurrent requests:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := direct.NewClient("my-login", "oauth-token", 10, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//
//	// Fetch every campaign of the account
//	campaigns, err := client.Campaigns(ctx, nil)
//
//	// Fetch bids for all active groups of several campaigns
//	bids, err := client.CampaignsBids(ctx, []int64{100, 200})
//
// # Features
//
//   - Context-aware calls with proper cancellation
//   - Transparent LimitedBy pagination
//   - Chunked, concurrency-bounded bid retrieval and assignment
//   - API units tracking via the Units response header
//
// # Error Handling
//
// Failures surface either as *APIError (the error object of the response
// envelope, with the remote error code) or as *HTTPError (non-200
// transport responses). Both can be matched with errors.As:
//
//	var apiErr *direct.APIError
//	if errors.As(err, &apiErr) && apiErr.IsAuthError() {
//	    // token expired or revoked
//	}
package direct
