package type_name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	typeName := New("Dictionary<String, Array<Int>>")

	assert.Equal(t, "Dictionary<String, Array<Int>>", typeName.Raw)
	assert.Equal(t, "Dictionary", typeName.Root)
	assert.Equal(t, []string{"String", "Array<Int>"}, typeName.Parameters)
	assert.Equal(t, "Dictionary<String, Array<Int>>", typeName.String())
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name                 string
		raw                  string
		wantHasGenericMarker bool
		wantIsParameterized  bool
	}{
		{
			name: "plain name",
			raw:  "TestClass",
		},
		{
			name:                 "parameterized name",
			raw:                  "GenericClass<String>",
			wantHasGenericMarker: true,
			wantIsParameterized:  true,
		},
		{
			name:                 "marker without parameters",
			raw:                  "Foo<>",
			wantHasGenericMarker: true,
		},
		{
			name:                 "dangling marker",
			raw:                  "Foo<",
			wantHasGenericMarker: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typeName := New(tt.raw)
			assert.Equal(t, tt.wantHasGenericMarker, typeName.HasGenericMarker())
			assert.Equal(t, tt.wantIsParameterized, typeName.IsParameterized())
		})
	}
}
