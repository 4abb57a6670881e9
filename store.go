package daftar

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies an editable field of a DebtRecord.
type Field int

const (
	FieldName Field = iota
	FieldLira
	FieldDollar
	FieldCategory
	FieldDate
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldLira:
		return "lira"
	case FieldDollar:
		return "dollar"
	case FieldCategory:
		return "category"
	case FieldDate:
		return "date"
	default:
		return "unknown"
	}
}

// ParseField parses a string into a Field.
func ParseField(s string) (Field, error) {
	switch s {
	case "name":
		return FieldName, nil
	case "lira":
		return FieldLira, nil
	case "dollar":
		return FieldDollar, nil
	case "category":
		return FieldCategory, nil
	case "date":
		return FieldDate, nil
	default:
		return 0, fmt.Errorf("unknown record field: %q", s)
	}
}

// This file implements the record store transformations. Every operation is
// a pure function of the prior state: it returns a new snapshot and leaves
// the receiver untouched. None of them can partially apply; an invalid
// index or field returns the prior state unchanged together with an error.

// UpdateRecordField replaces a single field of the record at index. Any
// string is accepted, numeric-looking fields included: validation happens
// at aggregation time only.
func (d *AppData) UpdateRecordField(index int, field Field, value string) (*AppData, error) {
	if index < 0 || index >= len(d.Records) {
		return d, fmt.Errorf("record index %d out of range [0,%d)", index, len(d.Records))
	}
	c := d.clone()
	r := &c.Records[index]
	switch field {
	case FieldName:
		r.Name = value
	case FieldLira:
		r.LiraDebt = value
	case FieldDollar:
		r.DollarDebt = value
	case FieldCategory:
		r.Category = value
	case FieldDate:
		r.Date = value
	default:
		return d, fmt.Errorf("unknown record field: %v", field)
	}
	return c, nil
}

// UpdateColumnLabel replaces a single display label.
func (d *AppData) UpdateColumnLabel(index int, value string) (*AppData, error) {
	if index < 0 || index >= len(d.Settings.ColumnNames) {
		return d, fmt.Errorf("column index %d out of range [0,%d)", index, len(d.Settings.ColumnNames))
	}
	c := d.clone()
	c.Settings.ColumnNames[index] = value
	return c, nil
}

// FillDateFrom stamps the given date on every record at position >= start,
// overwriting dates already present. The intent is "advance the cursor":
// stamping today on a row propagates it forward to all subsequent rows.
func (d *AppData) FillDateFrom(start int, date string) (*AppData, error) {
	if start < 0 || start >= len(d.Records) {
		return d, fmt.Errorf("record index %d out of range [0,%d)", start, len(d.Records))
	}
	c := d.clone()
	for i := start; i < len(c.Records); i++ {
		c.Records[i].Date = date
	}
	return c, nil
}

// ClearRecordsMatchingName resets every field except the id on records
// whose name equals the given string exactly. The match is case-sensitive,
// unlike the case-insensitive substring match used by Search.
func (d *AppData) ClearRecordsMatchingName(name string) *AppData {
	c := d.clone()
	for i := range c.Records {
		if c.Records[i].Name == name {
			c.Records[i].clear()
		}
	}
	return c
}

// SetExchangeRate parses value as a number and stores it. An unparsable or
// non-positive value falls back to DefaultExchangeRate: the rate is never
// rejected, the operation always produces a usable number.
func (d *AppData) SetExchangeRate(value string) *AppData {
	c := d.clone()
	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || rate <= 0 {
		rate = DefaultExchangeRate
	}
	c.Settings.ExchangeRate = rate
	return c
}

// SetPassword replaces the password. An empty value is equivalent to
// ClearPassword.
func (d *AppData) SetPassword(value string) *AppData {
	c := d.clone()
	c.Settings.Password = value
	return c
}

// ClearPassword removes the lock.
func (d *AppData) ClearPassword() *AppData {
	return d.SetPassword("")
}

// Locked reports whether a password is set.
func (d *AppData) Locked() bool { return d.Settings.Password != "" }

// CheckPassword reports whether the given value unlocks the store.
// Plaintext equality, no hashing, no attempt counter.
func (d *AppData) CheckPassword(value string) bool {
	return d.Settings.Password == "" || d.Settings.Password == value
}
