package timeutil

import "time"

// ClockLayout defines the kickoff display format (HH:MM).
const ClockLayout = "15:04"

// FormatKickoff renders an RFC3339 kickoff timestamp as a local clock
// time with the configured hour offset applied. Unparseable input is
// returned unchanged so the preview still shows something useful.
func FormatKickoff(value string, hourOffset int) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Add(time.Duration(hourOffset) * time.Hour).Format(ClockLayout)
}
