package operations

import (
	"strconv"

	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/models"
	"github.com/aplata/agenda/repository"
)

// Search looks contacts up by exact id or by case-insensitive substring
// over name, phone or email. It never modifies the agenda.
type Search struct {
	repo *repository.ContactRepository
	con  *console.Console
}

func NewSearch(repo *repository.ContactRepository, con *console.Console) *Search {
	return &Search{repo: repo, con: con}
}

func (op *Search) Run() {
	op.con.Printf("============ SEARCH CONTACT ============\n")

	contacts, err := op.repo.LoadAll()
	if err != nil {
		logg.Warnf("Continuing with partially loaded agenda: %v", err)
	}

	op.con.PrintContactsTable(contacts)

	op.con.Printf("Choose which field to search by:\n")
	option := op.con.PromptCriterion()
	if option == 0 {
		return
	}

	var results []models.Contact

	switch option {
	case 1:
		input := op.con.ReadLine("Enter the ID to search for (0 to cancel):")
		if input == "" || input == "0" {
			op.con.Printf("Operation cancelled.\n")
			return
		}

		id, err := strconv.Atoi(input)
		if err != nil {
			op.con.Printf("You must enter a valid number.\n")
			return
		}

		found, ok := models.FindByID(contacts, id)
		if !ok {
			op.con.Printf("No contact with that ID: %d\n", id)
			return
		}
		op.con.Printf("========= RESULTS =========\n")
		op.con.PrintContactsTable([]models.Contact{found})
		return
	case 2:
		value := op.con.ReadLine("Enter the name to search for:")
		results = models.FilterByField(contacts, value, models.NameField)
	case 3:
		value := op.con.ReadLine("Enter the phone to search for:")
		results = models.FilterByField(contacts, value, models.PhoneField)
	case 4:
		value := op.con.ReadLine("Enter the email to search for:")
		results = models.FilterByField(contacts, value, models.EmailField)
	}

	op.con.PrintContactsTable(results)
}
