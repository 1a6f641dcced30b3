//go:build !atomicsnochecks

package order

// ChecksEnabled reports whether ordering preconditions are validated at
// run time. Build with the atomicsnochecks tag to elide them.
const ChecksEnabled = true
