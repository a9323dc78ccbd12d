// Package transform provides static trimming helpers for plain string
// fields. They are meant to be called from [trim.Normalizer]
// implementations, naming each field explicitly instead of walking the
// struct by reflection.
package transform
