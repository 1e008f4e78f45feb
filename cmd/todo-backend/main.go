// Package main provides the todo-backend server CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo-backend",
	Short: "REST backend for a todo list with tags",
	Long: `todo-backend serves a REST API for todos and tags backed by a
relational store. Todos and tags are linked many-to-many; hashtag
tokens embedded in todo titles become tag associations.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("todo-backend v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
