package profile

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	errBlankNumber      = errors.New("blank value for numeric field")
	errFractionalNumber = errors.New("fractional value for integer field")
	errNumberOutOfRange = errors.New("number out of range for integer field")
	errNonFiniteNumber  = errors.New("non-finite number")
	errBoolNumber       = errors.New("boolean value for numeric field")
)

// decoderConfig: 업스트림 응답용 mapstructure 설정입니다.
// 숫자 형태의 문자열은 숫자로 변환되고, 빈 문자열은 선택 필드에서 nil 로 취급된다.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(absentValueHook),
	}
}

// decode: 신뢰할 수 없는 값을 Go 타입으로 디코딩합니다. 입력은 변경하지 않는다.
func decode(input any, result any) error {
	decoder, err := mapstructure.NewDecoder(decoderConfig(result))
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func absentValueHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch v := data.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if to.Kind() == reflect.Ptr {
			if trimmed == "" {
				return nil, nil
			}
			return v, nil
		}
		if !isNumericKind(to.Kind()) {
			return v, nil
		}
		if trimmed == "" {
			return nil, errBlankNumber
		}
		if isIntegerKind(to.Kind()) {
			// 0 접두 문자열이 8진수로 해석되지 않도록 10진수로 직접 변환한다
			n, err := strconv.ParseInt(trimmed, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse integer %q: %w", trimmed, err)
			}
			return n, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", trimmed, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("parse number %q: %w", trimmed, errNonFiniteNumber)
		}
		return f, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errNonFiniteNumber
		}
		if !isIntegerKind(to.Kind()) {
			return v, nil
		}
		if v != math.Trunc(v) {
			return nil, errFractionalNumber
		}
		// float64(math.MaxInt64) 는 2^63 으로 반올림되므로 경계값 자체도 범위 밖이다
		if v >= float64(math.MaxInt64) || v < float64(math.MinInt64) || (isUnsignedKind(to.Kind()) && v < 0) {
			return nil, fmt.Errorf("%w: %g", errNumberOutOfRange, v)
		}
		return v, nil
	case bool:
		if isNumericKind(to.Kind()) {
			return nil, errBoolNumber
		}
		return v, nil
	default:
		return data, nil
	}
}

func isIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isUnsignedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isNumericKind(kind reflect.Kind) bool {
	return isIntegerKind(kind) || kind == reflect.Float32 || kind == reflect.Float64
}
