package models

import "strings"

// FindByID returns the first contact with the given id.
func FindByID(contacts []Contact, id int) (Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// IndexOfID returns the position of the contact with the given id,
// or -1 if no contact has it.
func IndexOfID(contacts []Contact, id int) int {
	for i := range contacts {
		if contacts[i].ID == id {
			return i
		}
	}
	return -1
}

// FilterByField returns the contacts whose selected field contains needle,
// ignoring case and preserving the original order. An empty needle matches
// every contact.
func FilterByField(contacts []Contact, needle string, field Field) []Contact {
	result := []Contact{}
	needle = strings.ToLower(needle)

	for _, c := range contacts {
		if strings.Contains(strings.ToLower(field.Of(c)), needle) {
			result = append(result, c)
		}
	}
	return result
}

// NextID returns the id for a new contact: one more than the highest id
// in use, starting at 1 for an empty agenda.
func NextID(contacts []Contact) int {
	max := 0
	for _, c := range contacts {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
