package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemField is one custom column value on a line item.
type ItemField struct {
	Name  string
	Value string
}

// LineItem is one billed row. Besides description and price it carries an ordered
// set of custom column values; on the wire these are flattened into the same
// JSON object as the fixed fields.
type LineItem struct {
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	Extra       []ItemField     `json:"-"`
}

// Field returns the value of the named custom column.
func (li *LineItem) Field(name string) (string, bool) {
	for _, f := range li.Extra {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// SetField sets a custom column value, keeping the position of an existing column.
func (li *LineItem) SetField(name, value string) {
	for i := range li.Extra {
		if li.Extra[i].Name == name {
			li.Extra[i].Value = value
			return
		}
	}
	li.Extra = append(li.Extra, ItemField{Name: name, Value: value})
}

// MarshalJSON writes description, price and then custom columns in stored order.
func (li LineItem) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, "description", li.Description, true); err != nil {
		return nil, err
	}
	if err := writeMember(&buf, "price", li.Price, false); err != nil {
		return nil, err
	}
	for _, f := range li.Extra {
		if err := writeMember(&buf, f.Name, f.Value, false); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value interface{}, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// UnmarshalJSON reads a flat JSON object, keeping unknown keys as custom columns
// in the order they appear.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("line item: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("line item: expected JSON object")
	}

	*li = LineItem{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("line item: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("line item: unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("line item %q: %w", key, err)
		}

		switch key {
		case "description":
			li.Description = scalarText(raw)
		case "price":
			if err := li.Price.UnmarshalJSON(raw); err != nil {
				return fmt.Errorf("line item price: %w", err)
			}
		default:
			li.SetField(key, scalarText(raw))
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("line item: %w", err)
	}
	return nil
}

// scalarText renders a raw JSON value as plain text: strings are unquoted,
// null becomes empty and anything else keeps its JSON spelling.
func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		return ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// LineItems is the ordered item list stored as a JSONB column.
type LineItems []LineItem

// Total sums item prices.
func (items LineItems) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Price)
	}
	return total
}

// Value implements driver.Valuer.
func (items LineItems) Value() (driver.Value, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner.
func (items *LineItems) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scanning items: %w", err)
	}
	if data == nil {
		*items = LineItems{}
		return nil
	}
	return json.Unmarshal(data, items)
}

// Value implements driver.Valuer.
func (cd CompanyDetails) Value() (driver.Value, error) {
	return json.Marshal(cd)
}

// Scan implements sql.Scanner.
func (cd *CompanyDetails) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scanning company details: %w", err)
	}
	*cd = CompanyDetails{}
	if data == nil {
		return nil
	}
	return json.Unmarshal(data, cd)
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", src)
	}
}
