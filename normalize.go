package trim

import (
	"context"
	"reflect"
)

// Normalizer is implemented by types that fix up their own fields after
// decoding, typically by calling [Space] or the transform helpers on plain
// string fields. [Unmarshal] and [Decode] call it before validation: the top
// level first, then nested structs, pointers, slices, arrays and map values
// depth-first.
type Normalizer interface {
	Normalize()
}

// ContextNormalizer is like Normalizer but receives the context passed to
// [UnmarshalCtx] or [DecodeCtx].
type ContextNormalizer interface {
	Normalize(context.Context)
}

func normalize(ctx context.Context, dst any) {
	if dst == nil {
		return
	}
	normalizeValue(ctx, reflect.ValueOf(dst))
}

func callNormalize(ctx context.Context, v any) {
	switch n := v.(type) {
	case ContextNormalizer:
		n.Normalize(ctx)
	case Normalizer:
		n.Normalize()
	}
}

// normalizeValue calls Normalize on v when it can be reached through a
// pointer, then descends into it.
func normalizeValue(ctx context.Context, v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		callNormalize(ctx, v.Interface())
		normalizeContents(ctx, v.Elem())
	case reflect.Interface:
		if !v.IsNil() {
			normalizeValue(ctx, v.Elem())
		}
	case reflect.Struct:
		if v.CanAddr() {
			callNormalize(ctx, v.Addr().Interface())
		}
		normalizeContents(ctx, v)
	default:
		normalizeContents(ctx, v)
	}
}

func normalizeContents(ctx context.Context, v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			if t.Field(i).IsExported() {
				normalizeValue(ctx, v.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			normalizeValue(ctx, v.Index(i))
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			val := iter.Value()
			if val.Kind() != reflect.Struct {
				normalizeValue(ctx, val)
				continue
			}
			// Map values aren't addressable; copy, normalize, put back.
			cp := reflect.New(val.Type()).Elem()
			cp.Set(val)
			normalizeValue(ctx, cp)
			v.SetMapIndex(iter.Key(), cp)
		}
	case reflect.Pointer, reflect.Interface:
		normalizeValue(ctx, v)
	}
}
