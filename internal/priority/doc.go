// Package priority maps a job's size in megabytes to an NZBGet priority
// label through an ascending ladder of five size tiers.
//
// The first four tiers are "size strictly below Below gets Label". The
// fifth tier is the catch-all: its label applies to every size at or above
// the fourth bound. Its bound is kept so that a ladder always has five
// ascending entries (the NZBGet option set carries one), but it never
// takes part in classification.
package priority
