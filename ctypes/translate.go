package ctypes

import (
	"strings"

	"github.com/typeforge/dynrec"
	"github.com/typeforge/dynrec/errors"
	"github.com/typeforge/dynrec/shared"
)

const sharedPrefix = "class SharedPointer<"

// Translate maps a foreign type descriptor string to a layout
// descriptor. An unrecognized inner name is a reported error.
func Translate(spec string) (*dynrec.Descriptor, error) {
	switch {
	case strings.HasPrefix(spec, sharedPrefix) && strings.HasSuffix(spec, ">"):
		inner := strings.TrimSuffix(strings.TrimPrefix(spec, sharedPrefix), ">")
		return sharedDescriptor(strings.TrimSpace(inner))
	case strings.HasSuffix(spec, "*"):
		inner := strings.TrimSuffix(spec, "*")
		return pointerDescriptor(strings.TrimSpace(inner))
	default:
		return valueDescriptor(spec)
	}
}

func valueDescriptor(inner string) (*dynrec.Descriptor, error) {
	switch inner {
	case "unsigned char":
		return dynrec.Describe[uint8](), nil
	case "char":
		return dynrec.Describe[int8](), nil
	case "short":
		return dynrec.Describe[int16](), nil
	case "unsigned short":
		return dynrec.Describe[uint16](), nil
	case "int":
		return dynrec.Describe[int32](), nil
	case "unsigned int":
		return dynrec.Describe[uint32](), nil
	case "long":
		return dynrec.Describe[int32](), nil
	case "unsigned long":
		return dynrec.Describe[uint32](), nil
	case "gid":
		return dynrec.Describe[GID](), nil
	case "float":
		return dynrec.Describe[float32](), nil
	case "double":
		return dynrec.Describe[float64](), nil
	case "std::string":
		return dynrec.Describe[string](), nil
	case "std::wstring":
		return dynrec.Describe[WString](), nil
	case "class Vector3D":
		return dynrec.Describe[Vector3D](), nil
	case "class Color":
		return dynrec.Describe[Color](), nil
	case "class Point":
		return dynrec.Describe[Point](), nil
	default:
		return nil, unrecognized(inner)
	}
}

func pointerDescriptor(inner string) (*dynrec.Descriptor, error) {
	switch inner {
	case "unsigned char":
		return dynrec.Describe[*uint8](), nil
	case "char":
		return dynrec.Describe[*int8](), nil
	case "short":
		return dynrec.Describe[*int16](), nil
	case "unsigned short":
		return dynrec.Describe[*uint16](), nil
	case "int":
		return dynrec.Describe[*int32](), nil
	case "unsigned int":
		return dynrec.Describe[*uint32](), nil
	case "long":
		return dynrec.Describe[*int32](), nil
	case "unsigned long":
		return dynrec.Describe[*uint32](), nil
	case "gid":
		return dynrec.Describe[*GID](), nil
	case "float":
		return dynrec.Describe[*float32](), nil
	case "double":
		return dynrec.Describe[*float64](), nil
	case "std::string":
		return dynrec.Describe[*string](), nil
	case "std::wstring":
		return dynrec.Describe[*WString](), nil
	case "class Vector3D":
		return dynrec.Describe[*Vector3D](), nil
	case "class Color":
		return dynrec.Describe[*Color](), nil
	case "class Point":
		return dynrec.Describe[*Point](), nil
	default:
		return nil, unrecognized(inner)
	}
}

func sharedDescriptor(inner string) (*dynrec.Descriptor, error) {
	switch inner {
	case "unsigned char":
		return dynrec.Describe[shared.Shared[uint8]](), nil
	case "char":
		return dynrec.Describe[shared.Shared[int8]](), nil
	case "short":
		return dynrec.Describe[shared.Shared[int16]](), nil
	case "unsigned short":
		return dynrec.Describe[shared.Shared[uint16]](), nil
	case "int":
		return dynrec.Describe[shared.Shared[int32]](), nil
	case "unsigned int":
		return dynrec.Describe[shared.Shared[uint32]](), nil
	case "long":
		return dynrec.Describe[shared.Shared[int32]](), nil
	case "unsigned long":
		return dynrec.Describe[shared.Shared[uint32]](), nil
	case "gid":
		return dynrec.Describe[shared.Shared[GID]](), nil
	case "float":
		return dynrec.Describe[shared.Shared[float32]](), nil
	case "double":
		return dynrec.Describe[shared.Shared[float64]](), nil
	case "std::string":
		return dynrec.Describe[shared.Shared[string]](), nil
	case "std::wstring":
		return dynrec.Describe[shared.Shared[WString]](), nil
	case "class Vector3D":
		return dynrec.Describe[shared.Shared[Vector3D]](), nil
	case "class Color":
		return dynrec.Describe[shared.Shared[Color]](), nil
	case "class Point":
		return dynrec.Describe[shared.Shared[Point]](), nil
	default:
		return nil, unrecognized(inner)
	}
}

func unrecognized(inner string) *errors.Error {
	return errors.New(errors.PhaseTranslate, errors.KindUnsupported).
		Detail("unrecognized type name %q", inner).
		Build()
}

// CField names one field of a schema described in foreign type terms.
type CField struct {
	Name string
	Type string
}

// Compose translates every field descriptor string and builds the
// resulting schema. Translation failures are reported with the field
// that carried the bad descriptor.
func Compose(name string, fields []CField) (*dynrec.Schema, error) {
	specs := make([]dynrec.FieldSpec, len(fields))
	for i, f := range fields {
		d, err := Translate(f.Type)
		if err != nil {
			return nil, errors.New(errors.PhaseTranslate, errors.KindUnsupported).
				Field(f.Name).
				Cause(err).
				Detail("cannot translate field type %q", f.Type).
				Build()
		}
		specs[i] = dynrec.FieldSpec{Name: f.Name, Desc: d}
	}
	return dynrec.NewSchema(name, specs), nil
}
