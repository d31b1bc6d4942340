package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var ErrInvalidOptions = errors.New("invalid query options")

// AllDocsOptions are the query parameters of an _all_docs request.
// Optional values are pointers, nil means the parameter was not given.
type AllDocsOptions struct {
	StartKey     *string  `mapstructure:"startkey" json:"startkey,omitempty"`
	EndKey       *string  `mapstructure:"endkey" json:"endkey,omitempty"`
	InclusiveEnd *bool    `mapstructure:"inclusive_end" json:"inclusive_end,omitempty"`
	Limit        *int     `mapstructure:"limit" json:"limit,omitempty"`
	Skip         int      `mapstructure:"skip" json:"skip,omitempty"`
	Descending   bool     `mapstructure:"descending" json:"descending,omitempty"`
	IncludeDocs  bool     `mapstructure:"include_docs" json:"include_docs,omitempty"`
	Key          *string  `mapstructure:"key" json:"key,omitempty"`
	Keys         []string `mapstructure:"keys" json:"keys,omitempty"`

	// Paginate is only evaluated by the client side paginator,
	// it is never sent to a server.
	Paginate *bool `mapstructure:"paginate" json:"paginate,omitempty"`
}

func Str(v string) *string { return &v }
func Int(v int) *int       { return &v }
func Bool(v bool) *bool    { return &v }

// Clone returns a deep copy, changes to the copy never
// affect the original options.
func (o AllDocsOptions) Clone() AllDocsOptions {
	c := o
	c.StartKey = clonePtr(o.StartKey)
	c.EndKey = clonePtr(o.EndKey)
	c.InclusiveEnd = clonePtr(o.InclusiveEnd)
	c.Limit = clonePtr(o.Limit)
	c.Key = clonePtr(o.Key)
	c.Paginate = clonePtr(o.Paginate)
	if o.Keys != nil {
		c.Keys = make([]string, len(o.Keys))
		copy(c.Keys, o.Keys)
	}
	return c
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// HasKeys is true if the options select rows by exact key match
func (o AllDocsOptions) HasKeys() bool {
	return o.Key != nil || o.Keys != nil
}

// Paginated is true if a limit is set and pagination wasn't
// disabled explicitly.
func (o AllDocsOptions) Paginated() bool {
	if o.Limit == nil {
		return false
	}
	return o.Paginate == nil || *o.Paginate
}

// WithPageSize uses n as limit for a range query without limit,
// so that it is read in pages. Key lookups and queries with
// paginate=false are returned unchanged.
func (o AllDocsOptions) WithPageSize(n int) AllDocsOptions {
	if n <= 0 || o.Limit != nil || o.HasKeys() {
		return o
	}
	if o.Paginate != nil && !*o.Paginate {
		return o
	}
	o.Limit = Int(n)
	return o
}

func (o AllDocsOptions) IsInclusiveEnd() bool {
	return o.InclusiveEnd == nil || *o.InclusiveEnd
}

func (o AllDocsOptions) Validate() error {
	if o.Limit != nil && *o.Limit < 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidOptions, *o.Limit)
	}
	if o.Skip < 0 {
		return fmt.Errorf("%w: skip must be positive, got %d", ErrInvalidOptions, o.Skip)
	}
	if o.Keys != nil && (o.Key != nil || o.StartKey != nil || o.EndKey != nil) {
		return fmt.Errorf("%w: `keys` is incompatible with `key`, `start_key` and `end_key`", ErrInvalidOptions)
	}
	return nil
}

// ParseAllDocsOptions reads the options from an url query. Keys are
// JSON encoded like CouchDB does it, unquoted values are accepted as well.
func ParseAllDocsOptions(values url.Values) (AllDocsOptions, error) {
	var o AllDocsOptions
	var err error

	o.StartKey = stringOption(values, "startkey", "start_key")
	o.EndKey = stringOption(values, "endkey", "end_key")
	o.Key = stringOption(values, "key", "")

	if v := values.Get("keys"); v != "" {
		err = json.Unmarshal([]byte(v), &o.Keys)
		if err != nil {
			return o, fmt.Errorf("%w: keys: %v", ErrInvalidOptions, err)
		}
		if o.Keys == nil {
			o.Keys = []string{}
		}
	}

	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("%w: limit: %v", ErrInvalidOptions, err)
		}
		o.Limit = &limit
	}

	if v := values.Get("skip"); v != "" {
		o.Skip, err = strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("%w: skip: %v", ErrInvalidOptions, err)
		}
	}

	for name, target := range map[string]**bool{
		"inclusive_end": &o.InclusiveEnd,
		"paginate":      &o.Paginate,
	} {
		if v := values.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return o, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, name, err)
			}
			*target = &b
		}
	}

	for name, target := range map[string]*bool{
		"descending":   &o.Descending,
		"include_docs": &o.IncludeDocs,
	} {
		if v := values.Get(name); v != "" {
			*target, err = strconv.ParseBool(v)
			if err != nil {
				return o, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, name, err)
			}
		}
	}

	return o, o.Validate()
}

func stringOption(values url.Values, name, alias string) *string {
	v, ok := values[name]
	if !ok && alias != "" {
		v, ok = values[alias]
	}
	if !ok || len(v) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal([]byte(v[0]), &s); err == nil {
		return &s
	}
	s = strings.ReplaceAll(v[0], `"`, "")
	return &s
}

// Values encodes the options as url query. The paginate
// option is left out.
func (o AllDocsOptions) Values() url.Values {
	values := make(url.Values)

	for name, v := range map[string]*string{
		"startkey": o.StartKey,
		"endkey":   o.EndKey,
		"key":      o.Key,
	} {
		if v != nil {
			values.Set(name, jsonString(*v))
		}
	}
	if o.Keys != nil {
		out, _ := json.Marshal(o.Keys) // nolint: errcheck
		values.Set("keys", string(out))
	}
	if o.InclusiveEnd != nil {
		values.Set("inclusive_end", strconv.FormatBool(*o.InclusiveEnd))
	}
	if o.Limit != nil {
		values.Set("limit", strconv.Itoa(*o.Limit))
	}
	if o.Skip != 0 {
		values.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Descending {
		values.Set("descending", "true")
	}
	if o.IncludeDocs {
		values.Set("include_docs", "true")
	}

	return values
}

func jsonString(s string) string {
	out, _ := json.Marshal(s) // nolint: errcheck
	return string(out)
}

// DecodeAllDocsOptions converts a decoded JSON object, e.g. one element
// of a multi query request, into options.
func DecodeAllDocsOptions(in map[string]interface{}) (AllDocsOptions, error) {
	var o AllDocsOptions

	normalized := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch k {
		case "start_key":
			k = "startkey"
		case "end_key":
			k = "endkey"
		}
		normalized[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralNumber,
		Result:     &o,
	})
	if err != nil {
		return o, err
	}
	err = decoder.Decode(normalized)
	if err != nil {
		return o, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	return o, o.Validate()
}

// integralNumber rejects JSON numbers with a fraction for int fields,
// mapstructure would truncate them otherwise
func integralNumber(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	if f, ok := data.(float64); ok && f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	return data, nil
}

func (o AllDocsOptions) String() string {
	return "<AllDocsOptions " + o.Values().Encode() + ">"
}
