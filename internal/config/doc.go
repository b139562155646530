// Package config loads strokemap settings and gesture bindings.
//
// A configuration file is TOML or YAML, chosen by extension:
//
//	[gesture]
//	trigger = "rightclick"   # rightclick, ctrl or shift
//	noise_ratio = 0.01
//
//	[logging]
//	level = "info"
//
//	[scripts]
//	paths = ["gestures.lua"]
//	timeout = "2s"
//
//	[[bindings]]
//	gesture = "up-left"
//	action = "viewer.echo"
//	description = "show the combo"
//
// A binding's gesture may use any notation ("up-left", "↑←", "^<") or a
// hex code ("0x41"). Relative script paths are resolved against the
// directory of the configuration file.
//
// Environment variables STROKEMAP_TRIGGER, STROKEMAP_NOISE_RATIO and
// STROKEMAP_LOG_LEVEL override the file.
//
// Watcher reloads the file when it changes on disk. Its callback runs on
// the watcher's goroutine; hosts with a single-threaded event loop must
// forward the result to that loop before touching a registry.
package config
