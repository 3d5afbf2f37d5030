package console

import "github.com/pterm/pterm"

var DebugEnabled bool

// Debugf prints messages only if DebugEnabled is true
func Debugf(format string, args ...interface{}) {
	if DebugEnabled {
		pterm.Debug.Printfln(format, args...)
	}
}

// Infof prints messages always (standard output)
func Infof(format string, args ...interface{}) {
	pterm.Info.Printfln(format, args...)
}

func Warnf(format string, args ...interface{}) {
	pterm.Warning.Printfln(format, args...)
}

func Errorf(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
}

func Successf(format string, args ...interface{}) {
	pterm.Success.Printfln(format, args...)
}

// SetDebug toggles debug output, including pterm's own debug printer
func SetDebug(enabled bool) {
	DebugEnabled = enabled
	if enabled {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
}
