// Package roster loads and validates the recipient list for a broadcast.
//
// Rows come from a CSV file or an XLSX workbook with two logical columns,
// name and email. Header names are matched case-insensitively; the
// Indonesian header "nama" is accepted as an alias for "name". Validation
// drops rows with an empty name, a syntactically invalid email, or a
// duplicate email, preserving the order of the surviving rows and counting
// the drops for operator-facing reporting.
package roster
