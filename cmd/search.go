/*
Copyright © 2025 Ángel Plata Benítez

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aplata/agenda/operations"
)

func init() {
	rootCmd.AddCommand(createSearchCmd())
}

func createSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Find contacts by id, name, phone or email",
		Long: `Searches by exact id or by case-insensitive substring over the
chosen field and prints the matches.`,
		Run: func(cmd *cobra.Command, args []string) {
			operations.NewSearch(newRepository(), newConsole(cmd)).Run()
		},
	}
}
