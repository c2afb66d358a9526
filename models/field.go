package models

// Field selects one of the editable contact fields for duplicate checks
// and filtered searches.
type Field int

const (
	NameField Field = iota
	PhoneField
	EmailField
)

// Of returns the selected field's value for the given contact.
func (f Field) Of(c Contact) string {
	switch f {
	case NameField:
		return c.Name
	case PhoneField:
		return c.Phone
	case EmailField:
		return c.Email
	}
	return ""
}

// Label returns the user-facing name of the field.
func (f Field) Label() string {
	switch f {
	case NameField:
		return "name"
	case PhoneField:
		return "phone"
	case EmailField:
		return "email"
	}
	return "unknown"
}
