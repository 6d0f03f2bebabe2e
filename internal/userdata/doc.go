// Package userdata resolves where catalogs live on disk: the bundled
// default directory shipped next to the binary and the user's ~/.oye/
// directory, both overridable through OYE_-prefixed environment variables.
package userdata
