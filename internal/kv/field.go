package kv

import (
	"fmt"
	"strconv"
	"time"
)

// KeyValue represents typed log field (a key-value pair). Use Int, Int64, String, Bool, Duration,
// Error, Any or Stringer to construct it.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	ErrorType
	AnyType
	StringerType
	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() (typeName string) {
	if ft < 0 || ft >= endType {
		return fieldTypeNames[InvalidType]
	}

	return fieldTypeNames[ft]
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Nanosecond * time.Duration(f.vint)
}

func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(error) //nolint:forcetypeassert
}

func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case ErrorType:
		return f.ErrorValue()
	case AnyType, StringerType:
		return f.vany
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(fmt.Stringer) //nolint:forcetypeassert
}

func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// String returns a human-readable representation of the field value.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.Stringer().String()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   k,
		vint:  int64(v),
	}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   k,
		vint:  v,
	}
}

func String(k, v string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   k,
		vstr:  v,
	}
}

func Bool(key string, value bool) KeyValue {
	var i int64
	if value {
		i = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  i,
	}
}

func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

func Error(value error) KeyValue {
	return NamedError("error", value)
}

func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}

func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}
