// Package domain contains the value types shared by the puzzle calculators.
//
// It has no dependencies on file access, logging or the command line and
// contains only plain data and the error taxonomy.
//
// # Types
//
//   - [Outcome]: the Valid/Invalid classification of a report
//   - [Timings]: elapsed time per run phase, returned by value from a run
//
// # Errors
//
// Every failure is terminal for a run. Callers check the category with
// errors.Is against [ErrFileAccess], [ErrParse] or [ErrFieldCount].
package domain
