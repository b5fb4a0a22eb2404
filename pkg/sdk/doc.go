// Package sdk embeds the dateformat service in a Go program: the same
// format/parse engine, named-pattern catalogue and locale registry the HTTP
// server exposes, backed by Valkey, Redis or process memory.
//
// # Formatting and parsing
//
//	client, _ := sdk.New(ctx, sdk.WithMemory(), sdk.WithUTC())
//	res, _ := client.Format(ctx, sdk.Request{Pattern: "dd MMM yyyy"}, time.Now())
//	t, _ := client.Parse(ctx, sdk.Request{Name: "RFC822"}, "Sun, 14 Mar 2021 15:09:26 +0000")
//
// # Shared catalogue
//
// Patterns and locales stored through one client are visible to every
// client and server pointed at the same database and key prefix.
//
//	client, _ := sdk.New(ctx, sdk.WithValkey("localhost:6379", ""))
//	_, _, _ = client.Patterns().Define(ctx, sdk.Pattern{Name: "eu_date", Pattern: "dd/MM/yyyy"})
//	_, _ = client.Locales().Register(ctx, frenchTable)
package sdk
