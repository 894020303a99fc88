package notation

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userId string

type account struct {
	Id   userId
	Name string
}

type envelope[T any] struct {
	Data  T
	Error string
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "string",
			value: "",
			want:  "String",
		},
		{
			name:  "bool",
			value: true,
			want:  "Bool",
		},
		{
			name:  "int",
			value: 0,
			want:  "Int",
		},
		{
			name:  "float64",
			value: 0.0,
			want:  "Double",
		},
		{
			name:  "slice",
			value: []int{},
			want:  "Array<Int>",
		},
		{
			name:  "nested slice",
			value: [][]string{},
			want:  "Array<Array<String>>",
		},
		{
			name:  "map",
			value: map[string]int{},
			want:  "Dictionary<String, Int>",
		},
		{
			name:  "nested map value",
			value: map[string]map[string]string{},
			want:  "Dictionary<String, Dictionary<String, String>>",
		},
		{
			name:  "pointer",
			value: (*int)(nil),
			want:  "Optional<Int>",
		},
		{
			name:  "time",
			value: time.Time{},
			want:  "Date",
		},
		{
			name:  "named alias",
			value: userId(""),
			want:  "UserId",
		},
		{
			name:  "named struct",
			value: account{},
			want:  "Account",
		},
		{
			name:  "reflect type value",
			value: reflect.TypeOf(map[string][]int{}),
			want:  "Dictionary<String, Array<Int>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			description, err := Describe(tt.value)
			require.NoError(t, err)

			assert.Equal(t, tt.want, description)
		})
	}
}

func TestDescribeGenericInstantiation(t *testing.T) {
	description, err := Describe(envelope[string]{})
	require.NoError(t, err)

	assert.Equal(t, "Envelope<String>", description)
}

func TestDescribeIsDeterministic(t *testing.T) {
	value := map[string][]*account{}

	first, err := Describe(value)
	require.NoError(t, err)
	second, err := Describe(value)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Dictionary<String, Array<Optional<Account>>>", first)
}

func TestDescribeUnsupportedKind(t *testing.T) {
	_, err := Describe(make(chan int))
	assert.Error(t, err)
}

func TestDescribeNilReflectType(t *testing.T) {
	_, err := DescribeType(nil)
	assert.Error(t, err)
}
