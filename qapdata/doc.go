// Package qapdata reads, writes and generates QAP instances.
//
// Text layout (QAPLIB ".dat" style, whitespace separated):
//
//	n
//	F[0][0] ... F[0][n-1]
//	...
//	F[n-1][0] ... F[n-1][n-1]
//	D[0][0] ... D[0][n-1]
//	...
//	D[n-1][0] ... D[n-1][n-1]
//
// Line breaks carry no meaning; any run of whitespace separates tokens.
// Values may be integers or decimals.
package qapdata
