// Package engine contains the single-pass depth aggregation core. It never
// imports app or cli; keep it domain-only.
//
// Processing is strictly synchronous and input-ordered: one record is fully
// handled (accumulate, window test, maybe emit, maybe chromosome switch)
// before the next is read. The only state carried across records is one
// accumulator and one boundary snapshot.
package engine
