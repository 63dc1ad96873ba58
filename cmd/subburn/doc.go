// Command subburn batch-converts the videos in a directory into subtitled
// copies. Speech is transcribed with the Whisper CLI in an isolated process,
// subtitles are burned in with FFmpeg, and transcription artifacts are
// removed for every video that embeds successfully.
package main
