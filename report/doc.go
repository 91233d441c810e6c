// Package report renders solver output for people: sweep tables as XLSX,
// single solves as a PDF summary, and spanwise loading as a PNG plot.
package report
