package notation

import (
	"fmt"
	"reflect"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	motmedelReflect "github.com/Motmedel/utils_go/pkg/reflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vphpersson/type_description/internal/type_parameters"
	typeDescriptionErrors "github.com/vphpersson/type_description/pkg/errors"
	notationErrors "github.com/vphpersson/type_description/pkg/producers/notation/errors"
)

// The notation uses portable, capitalized names so that the rendered form is
// independent of Go type syntax: Array<E> for slices and arrays, Dictionary<K, V>
// for maps, Optional<T> for pointers.
var kindNames = map[reflect.Kind]string{
	reflect.Bool:    "Bool",
	reflect.String:  "String",
	reflect.Int:     "Int",
	reflect.Int8:    "Int8",
	reflect.Int16:   "Int16",
	reflect.Int32:   "Int32",
	reflect.Int64:   "Int64",
	reflect.Uint:    "UInt",
	reflect.Uint8:   "UInt8",
	reflect.Uint16:  "UInt16",
	reflect.Uint32:  "UInt32",
	reflect.Uint64:  "UInt64",
	reflect.Uintptr: "UInt",
	reflect.Float32: "Float",
	reflect.Float64: "Double",
}

var titleCaser = cases.Title(language.English, cases.NoLower)

func isTime(t reflect.Type) bool {
	return t.Name() == "Time" && t.PkgPath() == "time"
}

func describeNamed(reflectType reflect.Type) (string, error) {
	typeName, isGenericType := motmedelReflect.GetTypeName(reflectType)
	if typeName == "" {
		return "", motmedelErrors.NewWithTrace(type_parameters.ErrEmptyTypeName, reflectType)
	}

	if !isGenericType {
		// Plain primitives render their portable kind name; named aliases keep
		// their own name.
		if kindName, ok := kindNames[reflectType.Kind()]; ok && reflectType.Name() == reflectType.Kind().String() {
			return kindName, nil
		}
		return titleCaser.String(typeName), nil
	}

	info, err := type_parameters.Discover(reflectType)
	if err != nil {
		return "", fmt.Errorf("type parameters discover: %w", err)
	}
	if info == nil {
		return "", motmedelErrors.NewWithTrace(notationErrors.ErrNilInfo, reflectType)
	}

	arguments := make([]string, 0, len(info.ParameterNames))
	for _, parameterName := range info.ParameterNames {
		argumentType, err := info.Argument(reflectType, parameterName)
		if err != nil {
			return "", motmedelErrors.New(
				fmt.Errorf("argument: %w", err),
				reflectType, parameterName,
			)
		}

		argumentNotation, err := DescribeType(argumentType)
		if err != nil {
			return "", fmt.Errorf("describe type: %w", err)
		}
		arguments = append(arguments, argumentNotation)
	}

	return fmt.Sprintf("%s<%s>", titleCaser.String(typeName), strings.Join(arguments, ", ")), nil
}

// DescribeType renders a type in Name<P1, P2> notation. The output is
// deterministic: the same type always yields the same string.
func DescribeType(reflectType reflect.Type) (string, error) {
	if reflectType == nil {
		return "", motmedelErrors.NewWithTrace(notationErrors.ErrNilReflectType)
	}

	if reflectType.Kind() == reflect.Ptr {
		inner, err := DescribeType(reflectType.Elem())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Optional<%s>", inner), nil
	}

	if isTime(reflectType) {
		return "Date", nil
	}

	if reflectType.Name() != "" {
		return describeNamed(reflectType)
	}

	switch kind := reflectType.Kind(); kind {
	case reflect.Slice, reflect.Array:
		element, err := DescribeType(reflectType.Elem())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Array<%s>", element), nil
	case reflect.Map:
		key, err := DescribeType(reflectType.Key())
		if err != nil {
			return "", err
		}
		value, err := DescribeType(reflectType.Elem())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Dictionary<%s, %s>", key, value), nil
	case reflect.Interface:
		return "Any", nil
	case reflect.Struct:
		return "Any", nil
	default:
		return "", motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %v", typeDescriptionErrors.ErrUnsupportedKind, kind),
			kind,
		)
	}
}

// Describe renders the dynamic type of value in Name<P1, P2> notation.
func Describe(value any) (string, error) {
	var reflectType reflect.Type
	switch v := value.(type) {
	case reflect.Type:
		reflectType = v
	case reflect.Value:
		reflectType = v.Type()
	default:
		reflectType = reflect.TypeOf(v)
	}
	if reflectType == nil {
		return "", motmedelErrors.NewWithTrace(typeDescriptionErrors.ErrNilValue)
	}

	description, err := DescribeType(reflectType)
	if err != nil {
		return "", motmedelErrors.New(fmt.Errorf("describe type: %w", err), reflectType)
	}

	return description, nil
}
