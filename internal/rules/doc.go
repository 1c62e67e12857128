// Package rules holds the derived-stat arithmetic and dice helpers of the
// game. Everything here is pure apart from the injected dice.Roller.
package rules
