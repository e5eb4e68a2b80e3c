// Package directv4 provides a client for the legacy Yandex Direct API
// version 4 (JSON flavour), used for account information and Wordstat
// keyword statistics reports.
//
// Unlike v5, v4 is a single endpoint where the method name and token
// travel in the request body. Wordstat reports are asynchronous on the
// server side: a report is created, polled until ready, then deleted.
//
//	client, err := directv4.NewClient("my-login", "oauth-token", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := client.CreateWordstatReport(ctx, []string{"купить слона"}, nil)
//	entries, err := client.WordstatReport(ctx, id)
//	_ = client.DeleteWordstatReport(ctx, id)
package directv4
