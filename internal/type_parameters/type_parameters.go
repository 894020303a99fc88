package type_parameters

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	goTypes "go/types"
	"os"
	"reflect"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	motmedelReflect "github.com/Motmedel/utils_go/pkg/reflect"

	typeDescriptionErrors "github.com/vphpersson/type_description/pkg/errors"
)

var (
	ErrNilPackage      = errors.New("nil package")
	ErrNilScope        = errors.New("nil scope")
	ErrNotTypeName     = errors.New("not a type name")
	ErrNotNamed        = errors.New("not a named")
	ErrNotStruct       = errors.New("not a struct")
	ErrEmptyTypeName   = errors.New("empty type name")
	ErrNotGeneric      = errors.New("not a generic type")
	ErrEmptyTypeParams = errors.New("empty type parameters")
	ErrUnknownParam    = errors.New("unknown type parameter")
)

// ArgumentSource says how a struct field relates to a type parameter, which
// determines how to recover the concrete argument type from an instantiation's
// field type.
type ArgumentSource int

const (
	SourceDirect ArgumentSource = iota
	SourcePointer
	SourceSlice
	SourceArray
	SourceMapValue
	SourceMapKey
)

type FieldUse struct {
	Parameter string
	Source    ArgumentSource
}

// Info describes the generic shape of a struct type's declaration: the
// declared type parameter names in order, and for each parameter, a struct
// field whose type involves it.
type Info struct {
	ParameterNames   []string
	ParameterToField map[string]string
	FieldUses        map[string]FieldUse
}

// Argument recovers the concrete type bound to parameterName in the given
// instantiated struct type by inspecting the field recorded in the Info.
func (info *Info) Argument(structType reflect.Type, parameterName string) (reflect.Type, error) {
	fieldName := info.ParameterToField[parameterName]
	if fieldName == "" {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %s", ErrUnknownParam, parameterName))
	}

	field, ok := structType.FieldByName(fieldName)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(typeDescriptionErrors.ErrNoStructField, structType, fieldName)
	}

	argumentType := field.Type
	if use, ok := info.FieldUses[fieldName]; ok {
		switch use.Source {
		case SourcePointer:
			argumentType = motmedelReflect.RemoveIndirection(argumentType)
		case SourceSlice, SourceArray, SourceMapValue:
			argumentType = argumentType.Elem()
		case SourceMapKey:
			argumentType = argumentType.Key()
		case SourceDirect:
			// use as-is
		}
	}

	return argumentType, nil
}

func sourceFromTypesType(
	t goTypes.Type,
	paramSet map[*goTypes.TypeParam]struct{},
) (*goTypes.TypeParam, ArgumentSource, bool) {
	switch tt := t.(type) {
	case *goTypes.TypeParam:
		if _, ok := paramSet[tt]; ok {
			return tt, SourceDirect, true
		}
		return nil, 0, false
	case *goTypes.Pointer:
		if p, _, ok := sourceFromTypesType(tt.Elem(), paramSet); ok {
			return p, SourcePointer, true
		}
	case *goTypes.Slice:
		if p, _, ok := sourceFromTypesType(tt.Elem(), paramSet); ok {
			return p, SourceSlice, true
		}
	case *goTypes.Array:
		if p, _, ok := sourceFromTypesType(tt.Elem(), paramSet); ok {
			return p, SourceArray, true
		}
	case *goTypes.Map:
		if p, _, ok := sourceFromTypesType(tt.Elem(), paramSet); ok {
			return p, SourceMapValue, true
		}
		if p, _, ok := sourceFromTypesType(tt.Key(), paramSet); ok {
			return p, SourceMapKey, true
		}
	}

	return nil, 0, false
}

func discoverUsingTypesImporter(pkgPath string, typeName string) (*Info, error) {
	pkg, err := importer.Default().Import(pkgPath)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("go importer default import: %w", err))
	}
	if pkg == nil {
		return nil, motmedelErrors.NewWithTrace(ErrNilPackage)
	}

	pkgScope := pkg.Scope()
	if pkgScope == nil {
		return nil, motmedelErrors.NewWithTrace(ErrNilScope)
	}

	object := pkgScope.Lookup(typeName)
	if object == nil {
		return nil, nil
	}

	objectWithName, ok := object.(*goTypes.TypeName)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(ErrNotTypeName)
	}

	namedType, ok := objectWithName.Type().(*goTypes.Named)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(ErrNotNamed)
	}

	structType, ok := namedType.Underlying().(*goTypes.Struct)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(ErrNotStruct)
	}

	typeParameters := namedType.TypeParams()
	if typeParameters.Len() == 0 {
		return nil, motmedelErrors.NewWithTrace(ErrEmptyTypeParams)
	}

	paramSet := map[*goTypes.TypeParam]struct{}{}
	parameterNames := make([]string, typeParameters.Len())
	for i := range typeParameters.Len() {
		typeParameter := typeParameters.At(i)
		paramSet[typeParameter] = struct{}{}
		parameterNames[i] = typeParameter.Obj().Name()
	}

	fieldUses := map[string]FieldUse{}
	parameterToField := map[string]string{}
	for i := range structType.NumFields() {
		field := structType.Field(i)
		typeParameter, source, ok := sourceFromTypesType(field.Type(), paramSet)
		if !ok {
			continue
		}

		name := field.Name()
		use := FieldUse{Parameter: typeParameter.Obj().Name(), Source: source}
		fieldUses[name] = use
		if _, exists := parameterToField[use.Parameter]; !exists {
			parameterToField[use.Parameter] = name
		}
	}

	return &Info{
		ParameterNames:   parameterNames,
		ParameterToField: parameterToField,
		FieldUses:        fieldUses,
	}, nil
}

func sourceFromAstExpr(e ast.Expr, paramSet map[string]struct{}) (string, ArgumentSource, bool) {
	switch ee := e.(type) {
	case *ast.Ident:
		if _, ok := paramSet[ee.Name]; ok {
			return ee.Name, SourceDirect, true
		}
	case *ast.StarExpr:
		if p, _, ok := sourceFromAstExpr(ee.X, paramSet); ok {
			return p, SourcePointer, true
		}
	case *ast.ArrayType:
		if p, _, ok := sourceFromAstExpr(ee.Elt, paramSet); ok {
			if ee.Len == nil {
				return p, SourceSlice, true
			}
			return p, SourceArray, true
		}
	case *ast.MapType:
		if p, _, ok := sourceFromAstExpr(ee.Value, paramSet); ok {
			return p, SourceMapValue, true
		}
		if p, _, ok := sourceFromAstExpr(ee.Key, paramSet); ok {
			return p, SourceMapKey, true
		}
	}

	return "", 0, false
}

func discoverInWorkingDir(typeName string) (*Info, error) {
	workingDirectoryPath, err := os.Getwd()
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("os getwd: %w", err))
	}

	packages, err := parser.ParseDir(token.NewFileSet(), workingDirectoryPath, nil, 0)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("go parser parse dir: %w", err),
			workingDirectoryPath,
		)
	}

	for _, pkg := range packages {
		for _, file := range pkg.Files {
			for _, topLevelDeclaration := range file.Decls {
				genericDeclarationNode, ok := topLevelDeclaration.(*ast.GenDecl)
				if !ok || genericDeclarationNode.Tok != token.TYPE {
					continue
				}

				for _, spec := range genericDeclarationNode.Specs {
					typeSpec, ok := spec.(*ast.TypeSpec)
					if !ok || typeSpec.Name == nil || typeSpec.Name.Name != typeName {
						continue
					}
					structType, ok := typeSpec.Type.(*ast.StructType)
					if !ok {
						continue
					}

					var parameterNames []string
					paramSet := map[string]struct{}{}
					if typeParams := typeSpec.TypeParams; typeParams != nil {
						for _, field := range typeParams.List {
							for _, identifier := range field.Names {
								parameterNames = append(parameterNames, identifier.Name)
								paramSet[identifier.Name] = struct{}{}
							}
						}
					}
					if len(parameterNames) == 0 {
						continue
					}

					fieldUses := map[string]FieldUse{}
					parameterToField := map[string]string{}
					for _, field := range structType.Fields.List {
						if len(field.Names) == 0 {
							continue
						}

						parameter, source, ok := sourceFromAstExpr(field.Type, paramSet)
						if !ok {
							continue
						}

						for _, identifier := range field.Names {
							fieldUses[identifier.Name] = FieldUse{Parameter: parameter, Source: source}
							if _, exists := parameterToField[parameter]; !exists {
								parameterToField[parameter] = identifier.Name
							}
						}
					}

					return &Info{
						ParameterNames:   parameterNames,
						ParameterToField: parameterToField,
						FieldUses:        fieldUses,
					}, nil
				}
			}
		}
	}

	return nil, nil
}

// Discover finds the generic declaration of the given instantiated struct
// type. The declaration is located by parsing the Go source in the working
// directory first, falling back to the go/importer view of the type's package.
func Discover(structType reflect.Type) (*Info, error) {
	structType = motmedelReflect.RemoveIndirection(structType)
	if structType.Kind() != reflect.Struct {
		return nil, motmedelErrors.NewWithTrace(ErrNotStruct)
	}

	typeName, isGenericType := motmedelReflect.GetTypeName(structType)
	if typeName == "" {
		return nil, motmedelErrors.NewWithTrace(ErrEmptyTypeName)
	}
	if !isGenericType {
		return nil, motmedelErrors.NewWithTrace(ErrNotGeneric)
	}

	info, workingDirErr := discoverInWorkingDir(typeName)
	var importerErr error
	if info == nil {
		info, importerErr = discoverUsingTypesImporter(structType.PkgPath(), typeName)
	}
	if info == nil {
		return nil, errors.Join(workingDirErr, importerErr)
	}

	return info, nil
}
