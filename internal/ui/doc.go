// Package ui provides semantic text formatting for kpv output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or stdout is not a terminal, text decorations are used instead:
//
//	ui.Code.Sprint("kpv save")   // `kpv save`
//	ui.Key.Sprint("my-project")  // 'my-project'
//	ui.Muted.Sprint("none")      // (none)
//	ui.Path.Sprint("./.env")     // ./.env
package ui
