// Package builder accumulates request configuration through a fluent chain
// and resolves it into a dispatchable request on the terminal verb call.
//
// A typical test interaction:
//
//	resp, err := builder.Given(client).
//		Header("X-Request-Id", "abc").
//		QueryParam("page", 2).
//		PathParam("id", 7).
//		When().
//		Get("https://api.example.com/items/{{id}}")
//
// Builders are single-use: after a terminal verb runs, further terminal
// calls fail with ErrBuilderConsumed. A builder is owned by the call site
// that created it and must not be shared between goroutines.
package builder
