package trim

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

var (
	stringType   = reflect.TypeOf(String(""))
	stringsType  = reflect.TypeOf(Strings(nil))
	optionalType = reflect.TypeOf(Optional{})
	setType      = reflect.TypeOf(Set{})
)

// DecodeHook returns a mapstructure hook that runs the trimming hooks for
// fields of type [String], [Strings], [Optional] and [Set], so config
// loaders built on mapstructure (koanf, viper) trim the same way the JSON
// and YAML decoders do. Pointers to these types are handled by
// mapstructure itself. Other targets pass through untouched.
//
//	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
//	    DecodeHook: mapstructure.ComposeDecodeHookFunc(trim.DecodeHook(), ...),
//	    Result:     &cfg,
//	})
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		switch to {
		case stringType:
			s, err := DecodeString(Raw(data))
			if err != nil {
				return nil, err
			}
			return String(s), nil
		case stringsType:
			ss, err := DecodeStrings(Raw(data))
			if err != nil {
				return nil, err
			}
			return Strings(ss), nil
		case optionalType:
			if o, ok := data.(Optional); ok {
				return o, nil
			}
			p, err := DecodeOptional(Raw(data))
			if err != nil {
				return nil, err
			}
			return OptionalFrom(p), nil
		case setType:
			if s, ok := data.(Set); ok {
				return s, nil
			}
			return DecodeSet(Raw(data))
		default:
			return data, nil
		}
	}
}
