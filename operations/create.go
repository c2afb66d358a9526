// Package operations implements the interactive agenda flows. Every
// operation reloads the agenda from disk when it starts and rewrites the
// whole file when it changes something; nothing is cached between runs.
package operations

import (
	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/logger"
	"github.com/aplata/agenda/models"
	"github.com/aplata/agenda/repository"
	"github.com/aplata/agenda/validation"
)

var logg = logger.NewLogger()

// Create adds a new contact: it prompts for each field, re-asking until
// the value is well-formed and not already taken, then assigns the next
// free id and persists the agenda.
type Create struct {
	repo *repository.ContactRepository
	con  *console.Console
}

func NewCreate(repo *repository.ContactRepository, con *console.Console) *Create {
	return &Create{repo: repo, con: con}
}

func (op *Create) Run() {
	op.con.Printf("============ NEW CONTACT ============\n")

	contacts, err := op.repo.LoadAll()
	if err != nil {
		logg.Warnf("Continuing with partially loaded agenda: %v", err)
	}

	var name string
	for {
		name = op.con.ReadLine("Name:")
		if name == "" {
			return
		}
		if !op.repo.ExistsWithValue(contacts, name, models.NameField, -1) {
			break
		}
		op.con.Printf("A contact with that name already exists. Enter another:\n")
	}

	var phone string
	for {
		phone = op.con.ReadLine("Phone:")
		if phone == "" {
			return
		}
		if !validation.IsValidPhone(phone) {
			op.con.Printf("Invalid phone format. It must be digits only (7-15).\n")
			continue
		}
		if !op.repo.ExistsWithValue(contacts, phone, models.PhoneField, -1) {
			break
		}
		op.con.Printf("A contact with that phone already exists. Enter another:\n")
	}

	var email string
	for {
		email = op.con.ReadLine("Email:")
		if email == "" {
			return
		}
		if !validation.IsValidEmail(email) {
			op.con.Printf("Invalid email. Example: user@domain.com.\n")
			continue
		}
		if !op.repo.ExistsWithValue(contacts, email, models.EmailField, -1) {
			break
		}
		op.con.Printf("A contact with that email already exists. Enter another.\n")
	}

	contact := models.NewContact(models.NextID(contacts), name, phone, email)
	if err := validation.Record(contact); err != nil {
		logg.Errorf("Refusing to save invalid contact: %v", err)
		return
	}

	contacts = append(contacts, contact)

	if err := op.repo.SaveAll(contacts); err != nil {
		op.con.Printf("Error saving the agenda: %v\n", err)
		return
	}
	op.con.Printf("Contact saved successfully.\n")
}
