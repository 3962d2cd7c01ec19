// Package logger builds the zap logger shared by the CLI, the recipe loaders
// and the HTTP API.
//
// # Configuration
//
//   - Level: debug selects zap's development config; info, warn and error
//     select the production config at that level.
//   - Format: json (default) or console.
//
// # Request Correlation
//
// WithRayID reads the ray_id that the rayid middleware stores in the Fiber
// context and attaches it to the logger, so every line logged while serving
// a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Recipes loaded", zap.Int("count", reg.Len()))
//
//	l := logger.WithRayID(log, c)
//	l.Error("Reload failed", zap.Error(err))
package logger
