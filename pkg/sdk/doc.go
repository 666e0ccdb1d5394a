// Package sdk provides a Go client for the immich-search service, which
// turns natural-language photo queries into Immich advanced-search filters.
//
//	client := sdk.New("http://localhost:8080")
//	res, err := client.Parse(ctx, "archived favorites in Seattle from Jan 2024")
//	if err != nil {
//		// handle err
//	}
//	fmt.Println(res.URL) // ready-to-open Immich search link
package sdk
