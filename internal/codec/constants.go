package codec

// PCM constants
const (
	pcm16Bits        = 16
	pcm16Max         = 32767.0
	bytesPerSample16 = 2
	mp3Channels      = 2
)

// WAV output constants
const (
	wavFormatPCM  = 1
	outputDirPerm = 0o755

	outputPrefix   = "optimized_retro_"
	baselineSuffix = "_enhanced"
)
