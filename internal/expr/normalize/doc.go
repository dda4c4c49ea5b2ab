// Package normalize rewrites keypad notation into plain arithmetic syntax.
//
// Rules, applied in order as global textual substitutions:
//
//   - "×" becomes "*", "÷" becomes "/" and "−" (U+2212) becomes "-"
//   - N% becomes (N/100)
//   - √N becomes sqrt(N)
//   - N^M becomes pow(N,M)
//
// N and M are runs of ASCII digits. Percent, root and power only match bare
// digit runs: "(2+3)%", "√(4)", "2.5^2" and "2^3^4" are left (partly)
// unrewritten and fail later in the evaluator. Normalize never fails.
package normalize
