package operations

import (
	"fmt"

	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/models"
	"github.com/aplata/agenda/repository"
	"github.com/aplata/agenda/validation"
)

// Modify edits one field of an existing contact. The target is chosen by
// id, the new value is validated and checked for duplicates excluding the
// contact being edited, and the change is persisted only after an explicit
// confirmation. "0" cancels at every prompt.
type Modify struct {
	repo *repository.ContactRepository
	con  *console.Console
}

func NewModify(repo *repository.ContactRepository, con *console.Console) *Modify {
	return &Modify{repo: repo, con: con}
}

func (op *Modify) Run() {
	op.con.Printf("=========== MODIFY CONTACT ===========\n")

	contacts, err := op.repo.LoadAll()
	if err != nil {
		logg.Warnf("Continuing with partially loaded agenda: %v", err)
	}

	id, ok := op.con.PromptExistingID(contacts, true)
	if !ok {
		return
	}

	index := models.IndexOfID(contacts, id)
	target := &contacts[index]
	op.con.PrintContactsTable([]models.Contact{*target})

	for {
		op.con.Printf("Choose what to modify:\n")
		op.con.Printf("1 - Name\n")
		op.con.Printf("2 - Phone\n")
		op.con.Printf("3 - Email\n")
		op.con.Printf("0 - Cancel\n")

		option := op.con.ReadLine(">")
		if option == "" || option == "0" {
			return
		}

		var field models.Field
		switch option {
		case "1":
			field = models.NameField
		case "2":
			field = models.PhoneField
		case "3":
			field = models.EmailField
		default:
			op.con.Printf("Invalid option.\n")
			continue
		}

		newValue, ok := op.promptNewValue(field, contacts, index)
		if !ok {
			return
		}

		switch field {
		case models.NameField:
			target.Name = newValue
		case models.PhoneField:
			target.Phone = newValue
		case models.EmailField:
			target.Email = newValue
		}

		op.con.PrintContactsTable([]models.Contact{*target})

		if !op.con.Confirm("Apply these changes?") {
			op.con.Printf("The changes were not saved.\n")
			return
		}

		if err := op.repo.SaveAll(contacts); err != nil {
			op.con.Printf("Error saving the agenda: %v\n", err)
			return
		}
		op.con.Printf("Contact updated.\n")
		return
	}
}

// promptNewValue asks for the replacement value for the chosen field,
// re-prompting on bad format or duplicates. The contact at skipIndex is
// excluded from the duplicate check so a value can be "re-entered" over
// itself. Returns ok=false when the user cancels with "0".
func (op *Modify) promptNewValue(field models.Field, contacts []models.Contact, skipIndex int) (string, bool) {
	for {
		value := op.con.ReadLine(fmt.Sprintf("Enter the new %s:", field.Label()))
		if value == "" || value == "0" {
			op.con.Printf("Operation cancelled.\n")
			return "", false
		}

		switch field {
		case models.PhoneField:
			if !validation.IsValidPhone(value) {
				op.con.Printf("The phone must contain only digits (7 to 15). Try again.\n")
				continue
			}
		case models.EmailField:
			if !validation.IsValidEmail(value) {
				op.con.Printf("Invalid format. Example: user@domain.com.\n")
				continue
			}
		}

		if op.repo.ExistsWithValue(contacts, value, field, skipIndex) {
			op.con.Printf("A contact with that %s already exists.\n", field.Label())
			continue
		}
		return value, true
	}
}
