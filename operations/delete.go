package operations

import (
	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/models"
	"github.com/aplata/agenda/repository"
)

// Delete removes one contact by id after showing a preview and asking for
// confirmation.
type Delete struct {
	repo *repository.ContactRepository
	con  *console.Console
}

func NewDelete(repo *repository.ContactRepository, con *console.Console) *Delete {
	return &Delete{repo: repo, con: con}
}

func (op *Delete) Run() {
	op.con.Printf("=========== DELETE CONTACT ===========\n")

	contacts, err := op.repo.LoadAll()
	if err != nil {
		logg.Warnf("Continuing with partially loaded agenda: %v", err)
	}

	op.con.PrintContactsTable(contacts)

	id, ok := op.con.PromptExistingID(contacts, false)
	if !ok {
		return
	}

	index := models.IndexOfID(contacts, id)
	if index == -1 {
		op.con.Printf("Error looking up the contact.\n")
		return
	}
	target := contacts[index]

	op.con.Printf("\nYou are about to delete this contact:\n")
	op.con.Printf(" ID: %d\n", target.ID)
	op.con.Printf(" Name: %s\n", target.Name)
	op.con.Printf(" Phone: %s\n", target.Phone)
	op.con.Printf(" Email: %s\n", target.Email)

	if !op.con.Confirm("\nAre you sure you want to delete this contact?") {
		op.con.Printf("Operation cancelled...\n")
		return
	}

	contacts = append(contacts[:index], contacts[index+1:]...)

	if err := op.repo.SaveAll(contacts); err != nil {
		op.con.Printf("Error saving the agenda: %v\n", err)
		return
	}
	op.con.Printf("\nContact deleted successfully.\n")
}
