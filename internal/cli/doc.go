// Parses flags and configures logging for supersnake-pack.
//
// The tool accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Include source locations in log records.
//	-d, --debug     Enable debug output.
//	-C, --dir       Project directory.
//	-c, --config    Settings file.
//
// Flags override build-time defaults set via linker flags. Running the tool
// without a subcommand packages a release.
package cli
