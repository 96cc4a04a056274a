package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	errInvalidUUIDList   = errors.New("must contain valid UUIDs only")
	errDuplicateValues   = errors.New("must not contain duplicates")
	errBlankCategoryName = errors.New("category names must be 2 to 100 characters")
)

// uuidList checks every element of a []string or *[]string.
var uuidList = validation.By(func(value interface{}) error {
	for _, id := range stringsOf(value) {
		if err := is.UUID.Validate(id); err != nil || id == "" {
			return errInvalidUUIDList
		}
	}

	return nil
})

// distinct rejects repeated values once trimmed. Case matters, as it does for
// the unique index on category names.
var distinct = validation.By(func(value interface{}) error {
	seen := make(map[string]struct{})
	for _, v := range stringsOf(value) {
		key := strings.TrimSpace(v)
		if _, ok := seen[key]; ok {
			return errDuplicateValues
		}
		seen[key] = struct{}{}
	}

	return nil
})

var categoryNames = validation.By(func(value interface{}) error {
	for _, name := range stringsOf(value) {
		n := len(strings.TrimSpace(name))
		if n < 2 || n > 100 {
			return errBlankCategoryName
		}
	}

	return nil
})

func stringsOf(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case *[]string:
		if v != nil {
			return *v
		}
	}

	return nil
}

func in(values []string) validation.Rule {
	elements := make([]interface{}, 0, len(values))
	for _, v := range values {
		elements = append(elements, v)
	}

	return validation.In(elements...)
}
