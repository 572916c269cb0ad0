package config

import "os"

// Defaults applied before the file is read.
const (
	DefaultMode      = "full"
	DefaultBitDepth  = 16
	DefaultOutputDir = "retro_output"
	DefaultLogLevel  = "info"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const filePerm os.FileMode = 0o644
