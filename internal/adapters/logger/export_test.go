// export_test.go exports private functions for white-box testing.
package logger

// Exported error formatting helpers.
var (
	CollectErrorMessages = collectErrorMessages
	FormatErrorMessages  = formatErrorMessages
)

// NewPrettyHandlerWithProfile builds a handler with a fixed color profile.
var NewPrettyHandlerWithProfile = newPrettyHandler
