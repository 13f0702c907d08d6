package primitive

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"net/url"
	"reflect"
	"sigs.k8s.io/randfill"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the closed set of shapes the population engine knows how to fill.
type KindEnum int

const (
	KindUnknown KindEnum = iota // zero value, nothing can be generated for it

	KindText
	KindInteger
	KindNullableInteger
	KindReal
	KindNullableReal
	KindBoolean
	KindNullableBoolean
	KindDateTime
	KindNullableDateTime
	KindURI
	KindEnumeration
	KindOrderedCollection // slice
	KindArray             // fixed length array
	KindComplex           // struct, pointer to struct, interface
	KindNullableText
	KindUUID
	KindDecimal
	KindDuration
	KindMap
	KindSelfFilling // implements randfill.SimpleSelfFiller
	KindNullableEnumeration
	KindNullableUUID
	KindNullableDecimal
	KindNullableDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	timeType       = reflect.TypeFor[time.Time]()
	durationType   = reflect.TypeFor[time.Duration]()
	urlType        = reflect.TypeFor[url.URL]()
	uuidType       = reflect.TypeFor[uuid.UUID]()
	decimalType    = reflect.TypeFor[decimal.Decimal]()
	selfFillerType = reflect.TypeFor[randfill.SimpleSelfFiller]()
)

// IsLeaf reports whether the kind is produced by a single leaf strategy.
func (k KindEnum) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindText, KindNullableText,
		KindInteger, KindNullableInteger,
		KindReal, KindNullableReal,
		KindBoolean, KindNullableBoolean,
		KindDateTime, KindNullableDateTime,
		KindURI, KindEnumeration, KindNullableEnumeration,
		KindUUID, KindNullableUUID,
		KindDecimal, KindNullableDecimal,
		KindDuration, KindNullableDuration:
		return true
	}
}

// IsNullable reports whether the kind is a pointer wrapped primitive.
func (k KindEnum) IsNullable() bool {
	switch k {
	default:
		return false
	case KindNullableText, KindNullableInteger, KindNullableReal,
		KindNullableBoolean, KindNullableDateTime, KindNullableEnumeration,
		KindNullableUUID, KindNullableDecimal, KindNullableDuration:
		return true
	}
}

// IsCollection reports whether the kind holds a number of elements.
func (k KindEnum) IsCollection() bool {
	switch k {
	default:
		return false
	case KindOrderedCollection, KindArray, KindMap:
		return true
	}
}

// Classify resolves the kind of rtype. Exactly one kind is returned for any
// type; the checks below run in a fixed order and the first match wins.
func Classify(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindUnknown
	}

	// well-known library types, before their underlying shapes are considered
	switch rtype {
	case timeType:
		return KindDateTime
	case reflect.PointerTo(timeType):
		return KindNullableDateTime
	case durationType:
		return KindDuration
	case urlType, reflect.PointerTo(urlType):
		return KindURI
	case uuidType:
		return KindUUID
	case decimalType:
		return KindDecimal
	}

	if isSelfFilling(rtype) {
		return KindSelfFilling
	}

	switch rtype.Kind() {
	case reflect.Slice:
		return KindOrderedCollection
	case reflect.Array:
		return KindArray
	case reflect.Map:
		return KindMap
	case reflect.Struct, reflect.Interface:
		return KindComplex
	case reflect.Pointer:
		return classifyPointer(rtype)
	}

	return classifyScalar(rtype)
}

func classifyScalar(rtype reflect.Type) KindEnum {
	builtin := rtype.PkgPath() == ""

	switch rtype.Kind() {
	default:
		return KindUnknown
	case reflect.String:
		if builtin {
			return KindText
		}
		return KindEnumeration
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if builtin {
			return KindInteger
		}
		return KindEnumeration
	case reflect.Float32, reflect.Float64:
		return KindReal
	case reflect.Bool:
		return KindBoolean
	}
}

func classifyPointer(rtype reflect.Type) KindEnum {
	elem := rtype.Elem()

	switch elem {
	case uuidType:
		return KindNullableUUID
	case decimalType:
		return KindNullableDecimal
	case durationType:
		return KindNullableDuration
	}

	if elem.Kind() == reflect.Struct {
		return KindComplex
	}

	if elem.Kind() == reflect.Pointer {
		return KindUnknown
	}

	switch classifyScalar(elem) {
	case KindText:
		return KindNullableText
	case KindInteger:
		return KindNullableInteger
	case KindReal:
		return KindNullableReal
	case KindBoolean:
		return KindNullableBoolean
	case KindEnumeration:
		return KindNullableEnumeration
	}

	return KindUnknown
}

func isSelfFilling(rtype reflect.Type) bool {
	if rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
		if rtype.Kind() == reflect.Pointer {
			return false
		}
	}

	if rtype.Kind() == reflect.Interface {
		return false
	}

	return reflect.PointerTo(rtype).Implements(selfFillerType)
}
