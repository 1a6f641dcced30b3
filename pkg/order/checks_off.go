//go:build atomicsnochecks

package order

// ChecksEnabled reports whether ordering preconditions are validated at
// run time. This build has them elided.
const ChecksEnabled = false
