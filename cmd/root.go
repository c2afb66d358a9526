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
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appConfig "github.com/aplata/agenda/config"
	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/operations"
	"github.com/aplata/agenda/repository"
	"github.com/aplata/agenda/version"
)

var (
	cfgFile     string
	dataFileArg string
	config      *viper.Viper

	isDevEnv bool

	red = color.New(color.FgRed).SprintFunc()
)

// rootCmd represents the base command when called without any subcommands.
// It is built in the var initializer so it exists before the init funcs in
// the other command files run, regardless of file order.
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "agenda",
		Short: `agenda is a console contact book backed by a delimited text file.

Running it without a subcommand opens the interactive menu; each operation
is also available as its own subcommand.`,
		RunE: runMenu,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agenda.yaml)")
	cmd.PersistentFlags().StringVar(&dataFileArg, "file", "", "contacts file (overrides storage.file)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error

	config, err = appConfig.New(cfgFile, isDevEnv)
	cobra.CheckErr(err)

	if dataFileArg != "" {
		config.Set(appConfig.StorageFileKey, dataFileArg)
	}
}

// runMenu drives the interactive main menu until the user exits.
func runMenu(cmd *cobra.Command, args []string) error {
	repo := newRepository()
	con := newConsole(cmd)

	for {
		con.Printf("================== AGENDA ==================\n")
		con.Printf("1 - Create contact.\n")
		con.Printf("2 - List contacts.\n")
		con.Printf("3 - Modify contact.\n")
		con.Printf("4 - Delete contact.\n")
		con.Printf("5 - Search contact.\n")
		con.Printf("0 - EXIT...\n\n")

		option := con.ReadLine("Choose an option...")

		switch option {
		case "1":
			operations.NewCreate(repo, con).Run()
			con.Pause()
		case "2":
			operations.NewList(repo, con).Run()
			con.Pause()
		case "3":
			operations.NewModify(repo, con).Run()
			con.Pause()
		case "4":
			operations.NewDelete(repo, con).Run()
			con.Pause()
		case "5":
			operations.NewSearch(repo, con).Run()
			con.Pause()
		case "0", "":
			con.Printf("Goodbye!\n")
			return nil
		default:
			con.Printf("%s\n", red("Invalid option."))
		}
	}
}

// newRepository builds the contact repository from the resolved config.
func newRepository() *repository.ContactRepository {
	return repository.NewContactRepository(
		config.GetString(appConfig.StorageFileKey),
		config.GetString(appConfig.SeparatorKey),
	)
}

// newConsole binds a console to the command's streams, so tests can swap
// in buffers via cmd.SetIn/SetOut.
func newConsole(cmd *cobra.Command) *console.Console {
	return console.New(
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		config.GetString(appConfig.ConfirmTokenKey),
	)
}
