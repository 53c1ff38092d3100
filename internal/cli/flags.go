package cli

import "github.com/spf13/pflag"

// addMoodFlags registers the mood and trigger flags shared by the entry,
// check-in, and recommend commands.
func addMoodFlags(fs *pflag.FlagSet, mood, trigger *string) {
	fs.StringVar(mood, "mood", "", "Mood label")
	fs.StringVar(trigger, "trigger", "", "What prompted this")
}
