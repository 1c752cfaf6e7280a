// Package hooks runs user commands when the connectivity status changes and
// after reconnect attempts.
//
// Hook arguments are templates. {{status}} and {{previous}} expand to status
// names, {{result}} to "success" or "failure". A failing hook is logged and
// otherwise ignored.
package hooks
