// Package writers owns where emitted rows go.
//
// Design:
//   - Sink is a scoped resource: Enter at a chromosome boundary, Close
//     before the next Enter and at end of stream.
//   - Engine stays domain-only; it never opens files itself.
package writers
