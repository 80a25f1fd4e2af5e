// Package config holds the packaging settings.
//
// Defaults describe the supersnake cargo project layout. A TOML settings
// file may override any subset of them; keys it omits keep their default
// values.
//
//	product = "supersnake"
//	manifest = "Cargo.toml"
//	release_dir = "target/release"
//	config_file = "config.json"
//	assets_dir = "assets"
//	build_command = ["cargo", "build", "--release"]
//	require_executable = false
package config
