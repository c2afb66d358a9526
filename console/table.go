package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aplata/agenda/models"
)

// PrintContactsTable renders the contacts as a fixed-width table, or a
// short notice when there is nothing to show.
func (con *Console) PrintContactsTable(contacts []models.Contact) {
	if contacts == nil {
		con.Printf("\nThere are no saved contacts to show.\n")
		return
	}
	if len(contacts) == 0 {
		con.Printf("No contacts matched that criteria.\n")
		return
	}

	header := fmt.Sprintf("%-4s %-20s %-25s %-30s %-16s",
		"ID", "Name", "Phone", "Email", "Created")
	con.Printf("\n%s\n", blue(header))
	con.Printf("%s\n", strings.Repeat("-", len(header)))

	for _, c := range contacts {
		con.Printf("%-4d %-20s %-25s %-30s %-16s\n",
			c.ID,
			safe(c.Name),
			safe(c.Phone),
			safe(c.Email),
			safe(c.CreatedAt))
	}
}

// PromptExistingID asks the user for the id of an existing contact,
// optionally printing the table first. It returns (0, false) when the
// agenda is empty or the user cancels with "0".
func (con *Console) PromptExistingID(contacts []models.Contact, showTable bool) (int, bool) {
	if len(contacts) == 0 {
		return 0, false
	}
	if showTable {
		con.PrintContactsTable(contacts)
	}

	for {
		idStr := con.ReadLine("\nEnter the Id (0 to cancel):")
		if idStr == "" || idStr == "0" {
			con.Printf("\nOperation cancelled.\n")
			return 0, false
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			con.Printf("%s\n", red("Invalid ID. It must be an integer:"))
			continue
		}

		if models.IndexOfID(contacts, id) == -1 {
			con.Printf("No contact with that ID: %d\n", id)
			continue
		}
		return id, true
	}
}

// PromptCriterion shows the search criterion menu and returns the chosen
// option: 1 id, 2 name, 3 phone, 4 email, or 0 for cancel.
func (con *Console) PromptCriterion() int {
	con.Printf("1 - ID\n")
	con.Printf("2 - Name\n")
	con.Printf("3 - Phone\n")
	con.Printf("4 - Email\n")
	con.Printf("0 - Cancel\n")

	for {
		input := con.ReadLine("Choose an option (0-4)")
		if input == "" || input == "0" {
			con.Printf("Operation cancelled.\n")
			return 0
		}

		option, err := strconv.Atoi(input)
		if err != nil {
			con.Printf("%s\n", red("You must enter a valid number."))
			continue
		}
		if option >= 1 && option <= 4 {
			return option
		}
		con.Printf("Invalid option: 0 - 4\n")
	}
}

// safe keeps nil-ish values from breaking the table columns.
func safe(s string) string {
	return strings.TrimSpace(s)
}
