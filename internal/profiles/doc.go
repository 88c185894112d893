// Package profiles stores named configurations as JSON documents in a
// profiles directory.
//
// Profile names follow the same rules as file-safe identifiers:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//
// Every path is resolved with filepath-securejoin so that a name can never
// point outside the profiles directory, even through symlinks.
package profiles
