// Package lua runs gesture scripts with gopher-lua.
//
// A script binds gestures through the global gesture table:
//
//	gesture.bind("up-left", function(viewer, combo)
//	    viewer.notify("back " .. combo)
//	end)
//	gesture.bind({"down", "right"}, "viewer.clear")
//	gesture.bind(0x41, "viewer.echo", {overwrite = true, description = "echo"})
//
// A gesture may be given as text in any notation, a canonical code (a
// number, or a "0x..." string), or a table of direction words. The handler is either a Lua function or the
// name of a built-in action.
//
// Other functions:
//
//	gesture.unbind(spec)          -> bool
//	gesture.bound(spec)           -> bool
//	gesture.code(spec)            -> number, or "0x..." above 2^53
//	gesture.format(spec[, notation]) -> string
//	gesture.list()                -> {"up-left", ...}
//	gesture.log(msg)
//
// Scripts run in a restricted state: io, os, debug and package loading are
// not available. Bindings made by a script are tagged with the source
// "lua:<file>" and are replaced as a whole when the script is reloaded.
package lua
