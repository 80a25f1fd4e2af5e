// Provides platform-appropriate paths for the packaging tool.
//
// User settings follow XDG conventions on Linux and platform-native
// conventions on macOS and Windows, under a "supersnake-pack" subdirectory.
package paths
