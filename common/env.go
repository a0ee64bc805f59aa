// Package common provides the names and constants shared between the
// command layer and the hook: NZBGet environment variables, event kinds
// and process exit codes.
package common

import "strings"

// Environment variables exported by NZBGet to queue scripts.
const (
	// MarkerEnv is present in every script environment of NZBGet 15.0 or
	// later. Its value is irrelevant, only its presence is checked.
	MarkerEnv = "NZBOP_UNPACKPASSFILE"

	// EventEnv names the queue event that triggered the script.
	EventEnv = "NZBNA_EVENT"

	// NZBIDEnv is the id of the group the event refers to.
	NZBIDEnv = "NZBNA_NZBID"

	// NZBNameEnv is the display name of the group the event refers to.
	NZBNameEnv = "NZBNA_NZBNAME"

	ControlIPEnv       = "NZBOP_CONTROLIP"
	ControlPortEnv     = "NZBOP_CONTROLPORT"
	ControlUsernameEnv = "NZBOP_CONTROLUSERNAME"
	ControlPasswordEnv = "NZBOP_CONTROLPASSWORD"
)

// ScriptOptionEnv returns the variable NZBGet uses to pass the script
// option name, e.g. ScriptOptionEnv("VerySmallSize") is
// "NZBPO_VERYSMALLSIZE".
func ScriptOptionEnv(name string) string {
	return "NZBPO_" + strings.ToUpper(name)
}

