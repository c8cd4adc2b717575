// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry. Register adds features; LoadAll loads the
// enabled ones in registration order. The provider and health features are
// the two modules loaded today.
package loader
