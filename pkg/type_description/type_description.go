package type_description

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"

	"github.com/vphpersson/type_description/internal/generic_name"
	typeDescriptionErrors "github.com/vphpersson/type_description/pkg/errors"
	"github.com/vphpersson/type_description/pkg/producers/notation"
	"github.com/vphpersson/type_description/pkg/types/type_name"
)

// Describer is implemented by types that supply their own formatted type name
// in Name<P1, P2> notation. Implementing it is opt-in; values that do not are
// described via reflection instead.
type Describer interface {
	DescribeType() string
}

// RootTypeName returns the formatted name with any trailing generic-parameter
// notation removed.
func RootTypeName(formattedName string) string {
	root, _ := generic_name.Parse(formattedName)
	return root
}

// GenericParameterNames returns the ordered top-level generic parameters of
// the formatted name, or nil when it has none.
func GenericParameterNames(formattedName string) []string {
	_, parameters := generic_name.Parse(formattedName)
	return parameters
}

func Parse(formattedName string) type_name.TypeName {
	return type_name.New(formattedName)
}

// DescriptionOf returns the formatted type name of value. A value implementing
// Describer supplies its own; anything else is rendered with the notation
// producer.
func DescriptionOf(value any) (string, error) {
	if describer, ok := value.(Describer); ok {
		return describer.DescribeType(), nil
	}

	if value == nil {
		return "", motmedelErrors.NewWithTrace(typeDescriptionErrors.ErrNilValue)
	}

	description, err := notation.Describe(value)
	if err != nil {
		return "", fmt.Errorf("notation describe: %w", err)
	}

	return description, nil
}

// DescribeAndParse is a convenience combining DescriptionOf and Parse.
func DescribeAndParse(value any) (type_name.TypeName, error) {
	description, err := DescriptionOf(value)
	if err != nil {
		return type_name.TypeName{}, fmt.Errorf("description of: %w", err)
	}

	return Parse(description), nil
}
