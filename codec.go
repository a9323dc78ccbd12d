package trim

import (
	"context"
	"encoding/json"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Unmarshal decodes JSON from b into dst, then normalizes and validates it.
// Fields declared with the trimming types are trimmed by the decoder itself;
// [Normalizer] implementations run afterwards, and if dst implements
// validation.Validatable or validation.ValidatableWithContext it is
// validated last. A decode error aborts the whole call.
func Unmarshal(b []byte, dst any) error {
	return UnmarshalCtx(context.Background(), b, dst)
}

// UnmarshalCtx is like Unmarshal but passes ctx to ContextNormalizer and
// ValidatableWithContext.
func UnmarshalCtx(ctx context.Context, b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	return finish(ctx, dst)
}

// Decode reads JSON from r into dst using a streaming decoder, then
// normalizes and validates. Use this instead of [Unmarshal] when reading
// directly from an [io.Reader] such as an HTTP request body.
func Decode(r io.Reader, dst any) error {
	return DecodeCtx(context.Background(), r, dst)
}

// DecodeCtx is like Decode but passes ctx to ContextNormalizer and
// ValidatableWithContext.
func DecodeCtx(ctx context.Context, r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return err
	}
	return finish(ctx, dst)
}

// UnmarshalYAML is like Unmarshal for YAML documents.
func UnmarshalYAML(b []byte, dst any) error {
	return UnmarshalYAMLCtx(context.Background(), b, dst)
}

// UnmarshalYAMLCtx is like UnmarshalYAML but passes ctx to
// ContextNormalizer and ValidatableWithContext.
func UnmarshalYAMLCtx(ctx context.Context, b []byte, dst any) error {
	if err := yaml.Unmarshal(b, dst); err != nil {
		return err
	}
	return finish(ctx, dst)
}

func finish(ctx context.Context, dst any) error {
	normalize(ctx, dst)
	switch v := dst.(type) {
	case validation.ValidatableWithContext:
		return v.ValidateWithContext(ctx)
	case validation.Validatable:
		return v.Validate()
	}
	return nil
}
