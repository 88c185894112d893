// Package settings loads and saves wsbctl's own preferences.
//
// Preferences live in a TOML file under the user's configuration
// directory:
//
//	default_preset = "secure"
//	default_sandbox_folder = 'C:\Users\WDAGUtilityAccount\Desktop\Shared'
//	profiles_dir = "/home/me/.config/wsbctl/profiles"
//	editor = "code --wait"
//	recent_files = ["/home/me/box.json"]
//
// A missing file yields the defaults. Keys not listed above are ignored
// with a debug log line.
package settings
