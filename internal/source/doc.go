// Package source reads the list of target URLs from tabular files.
//
// Every loader returns the first column of every row in file order, header
// row included. Deciding which rows are targets is left to the checker.
// Supported formats are Excel workbooks, CSV/TSV, HTML tables and plain text
// with one URL per line.
package source
