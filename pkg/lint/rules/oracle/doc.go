// Package oracle provides lint rules specific to the Oracle dialect.
//
// Rules in this package:
//   - OR01: Slash terminator should be on a new line
package oracle
