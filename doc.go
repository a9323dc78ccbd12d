// Package trim provides whitespace-trimming hooks for decoded struct fields.
//
// Declare a field with one of the trimming types and the decoder trims it
// while the document is decoded:
//
//	type Signup struct {
//	    Name     trim.String   `json:"name"`
//	    Tags     trim.Strings  `json:"tags"`
//	    Nickname trim.Optional `json:"nickname"`
//	    Roles    trim.Set      `json:"roles"`
//	}
//
// [String], [Strings], [Optional] and [Set] work with encoding/json,
// gopkg.in/yaml.v3 and, through [DecodeHook], mapstructure. The underlying
// hooks ([DecodeString], [DecodeStrings], [DecodeOptional], [DecodeSet])
// accept any [Decoder] and can be called directly from a custom
// UnmarshalJSON.
//
// An [Optional] that is blank after trimming is absent, not empty.
//
// For structs that keep plain string fields, [Unmarshal] and [Decode]
// combine decoding with [Normalizer] calls and validation in one step.
//
// Sub-packages:
//   - transform – static trimming helpers for Normalize methods
package trim
