package collection

import (
	"bytes"
	"encoding"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/iancoleman/orderedmap"

	"github.com/iotaledger/hive.go/ierrors"
)

// marshalEntries encodes the given entries as a JSON object that keeps their order.
func marshalEntries[K comparable, V any](entries []Entry[K, V]) ([]byte, error) {
	object := orderedmap.New()
	for _, entry := range entries {
		key, err := encodeKey(entry.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, ierrors.Wrapf(err, "failed to marshal value of key %s", key)
		}

		object.Set(key, json.RawMessage(value))
	}

	return json.Marshal(object)
}

// unmarshalEntries decodes the members of a JSON object in the order they appear. A JSON null yields no entries.
func unmarshalEntries[K comparable, V any](data []byte) ([]Entry[K, V], error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read JSON object")
	}

	if token == nil {
		return nil, nil
	}

	if delim, isDelim := token.(json.Delim); !isDelim || delim != '{' {
		return nil, ierrors.Errorf("expected JSON object, got %v", token)
	}

	entries := make([]Entry[K, V], 0)
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to read JSON object key")
		}

		//nolint:forcetypeassert // object keys are always strings
		key, err := decodeKey[K](keyToken.(string))
		if err != nil {
			return nil, err
		}

		var value V
		if err = decoder.Decode(&value); err != nil {
			return nil, ierrors.Wrapf(err, "failed to unmarshal value of key %v", key)
		}

		entries = append(entries, NewEntry(key, value))
	}

	if _, err = decoder.Token(); err != nil {
		return nil, ierrors.Wrap(err, "failed to read end of JSON object")
	}

	return entries, nil
}

// encodeKey returns the JSON object key of the given map key, following the rules of encoding/json.
func encodeKey(key any) (string, error) {
	keyValue := reflect.ValueOf(key)
	if keyValue.Kind() == reflect.String {
		return keyValue.String(), nil
	}

	if textMarshaler, isTextMarshaler := key.(encoding.TextMarshaler); isTextMarshaler {
		text, err := textMarshaler.MarshalText()
		if err != nil {
			return "", ierrors.Wrapf(err, "failed to marshal key %v", key)
		}

		return string(text), nil
	}

	//nolint:exhaustive // only string, integer and text keys are supported
	switch keyValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(keyValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(keyValue.Uint(), 10), nil
	default:
		return "", ierrors.Errorf("unsupported key type %T", key)
	}
}

// decodeKey parses a JSON object key into the given key type, following the rules of encoding/json.
func decodeKey[K comparable](key string) (decoded K, err error) {
	quotedKey, err := json.Marshal(key)
	if err != nil {
		return decoded, ierrors.Wrapf(err, "failed to quote key %s", key)
	}

	if err = json.Unmarshal(quotedKey, &decoded); err == nil {
		return decoded, nil
	}

	if numericErr := json.Unmarshal([]byte(key), &decoded); numericErr != nil {
		return decoded, ierrors.Wrapf(err, "failed to unmarshal key %s", key)
	}

	return decoded, nil
}
