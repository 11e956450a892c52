// Package anagram provides an HTTP client for the remote anagram generator.
//
// The generator is treated as an opaque JSON-over-HTTP service with two
// routes:
//
//	POST /generate-anagram  {"user_name": "...", "input_text": "..."}
//	                        -> {"anagrams": ["...", ...]}
//	GET  /health            -> {"status": "ok"}
//
// Non-2xx responses may carry {"detail": "..."}; the detail is surfaced to
// the user verbatim through AlertMessage.
//
// # Usage Example
//
//	client := anagram.NewClient("http://localhost:8000")
//
//	resp, err := client.Generate(ctx, anagram.Request{
//	    UserName:  "Ann Lee",
//	    InputText: "listen",
//	})
//	if err != nil {
//	    fmt.Println(anagram.AlertMessage(err))
//	    return
//	}
//	for _, a := range resp.Anagrams {
//	    fmt.Println(a)
//	}
//
// # Timeouts and Retries
//
// The client enforces no timeout by default; a request resolves only on
// network completion, error, or context cancellation. Failed requests are
// never retried.
//
// # Error Handling
//
// All failures are returned as *Error with a Type describing the category
// (network, timeout, connection refused, DNS, HTTP, parse). Use the Is*
// helpers or errors.As to inspect them.
package anagram
