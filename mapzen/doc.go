// Package mapzen provides a client for the Mapzen-style geospatial HTTP
// APIs: geocoding search, autocomplete, reverse geocoding, turn-by-turn
// routing, and libpostal address parsing/expansion.
//
// The client translates typed method calls into correctly-formed requests
// against the versioned geocoding endpoints and the unversioned routing and
// libpostal endpoints, and maps HTTP failures onto a small error taxonomy.
//
// # Usage
//
// Create a client with an API key:
//
//	logger := zerolog.New(os.Stdout)
//	client := mapzen.NewClient("your-api-key", logger,
//		mapzen.WithTimeout(10*time.Second),
//	)
//
//	ctx := context.Background()
//	results, err := client.Search(ctx, "Union Square", &mapzen.SearchOptions{
//		Size:            5,
//		BoundaryCountry: "USA",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Each operation issues one synchronous request with no retries. Optional
// parameters are enumerated per operation in typed option structs; every
// request is additionally filtered against the operation's parameter
// whitelist, so only recognized parameters ever reach the wire.
//
// # Error Handling
//
// Failures map onto four types:
//
//   - ValidationError: a required input was missing or empty; returned
//     before any network interaction
//   - KeyError: the API rejected the key (HTTP 403)
//   - RateLimitError: rate limit exceeded (HTTP 429); the caller must back
//     off, nothing is retried internally
//   - APIError: any other 4xx/5xx, plus transport and decode failures
//
// KeyError and RateLimitError embed APIError, so the originating status
// code is always available:
//
//	var rateErr *mapzen.RateLimitError
//	if errors.As(err, &rateErr) {
//		// back off, rateErr.StatusCode == 429
//	}
package mapzen
