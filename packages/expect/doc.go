// Package expect verifies dispatch outcomes with chained assertions.
//
// An expectation wraps a response and a Reporter (typically *testing.T):
//
//	expect.New(t, resp).
//		Status(200).
//		HeaderContains("Content-Type", "application/json").
//		JSON("data.id").Equals(float64(7))
//
// Supported checks cover status codes, headers, raw body content, JSON
// paths (via gjson), JSON Schema documents and response latency. Every
// failed check reports expected versus actual through the Reporter and the
// chain keeps going, so one run surfaces all mismatches.
package expect
