// Package utils provides small conversion helpers shared by the HTTP and
// CLI layers, such as reading loosely typed boolean flags.
package utils
