// Package convention provides lint rules for SQL conventions.
// These rules follow SQLFluff's CV (Convention) rule category.
//
// Rules in this package:
//   - CV06: Statements must end with a semicolon
package convention
