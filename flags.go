package driftspace

import "flag"

var (
	FlagSeed   = flag.Int64("seed", 1977, "world generation seed")
	FlagMute   = flag.Bool("mute", false, "disable all audio")
	FlagNoPost = flag.Bool("no-post", false, "disable the post-processing chain")
	FlagDebug  = flag.Bool("debug", false, "show the debug overlay")
)
