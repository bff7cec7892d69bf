package optional

import (
	"database/sql"
	"database/sql/driver"
)

// Scan implements sql.Scanner, so an Optional can be used directly as a Scan destination
// for a nullable column. SQL NULL scans to an empty Optional; anything else is converted
// into a T under the same rules database/sql applies to sql.Null[T].
func (o *Optional[T]) Scan(src any) error {
	var null sql.Null[T]

	err := null.Scan(src)
	if err != nil {
		return err
	}

	if !null.Valid {
		*o = Optional[T]{}

		return nil
	}

	*o = OfNillable(null.V)

	return nil
}

// Value implements driver.Valuer, so an Optional can be passed directly as a query
// argument for a nullable column. An empty Optional becomes SQL NULL; a present value
// is converted under the default driver parameter rules, so any payload type accepted
// by database/sql as a plain query argument works as an Optional payload too.
func (o Optional[T]) Value() (driver.Value, error) {
	if !o.present {
		return nil, nil
	}

	// Not delegated to sql.Null[T]: its Value skips this conversion before Go 1.24
	// (golang.org/issue/69837), failing to bind payloads like int or float32.
	return driver.DefaultParameterConverter.ConvertValue(o.value)
}

var (
	_ sql.Scanner   = (*Optional[string])(nil)
	_ driver.Valuer = Optional[string]{}
)
