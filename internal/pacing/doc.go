// Package pacing provides the delay policy enforced between registry lookups.
//
// The resolver calls Pace after every lookup attempt. Sleep reproduces the
// fixed one-second pause the MusicBrainz usage policy asks for; Limiter is a
// token bucket with the same ceiling that discounts time already spent on the
// network. Either can be swapped in without touching match selection.
package pacing
