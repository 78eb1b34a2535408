// Package builtin provides generated values for request templates.
//
// Functions are referenced from templates as {{name(args)}}:
//   - uuid() - random UUID v4
//   - now([layout]) - current time, RFC3339 by default
//   - timestamp() - Unix seconds
//   - randomString([length]), randomInt([min, max])
//   - base64(value), urlEncode(value)
package builtin
