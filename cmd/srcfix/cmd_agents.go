package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"srcfix/internal/status"
)

var agentsJSON bool

// agentsCmd lists the available operations; the dashboard consumes the JSON
// form of this listing.
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the available fix and check operations",
	RunE:  listAgents,
}

func init() {
	agentsCmd.Flags().BoolVar(&agentsJSON, "json", false, "print as JSON")
}

func listAgents(cmd *cobra.Command, args []string) error {
	agents := status.Agents()

	if agentsJSON {
		data, err := json.MarshalIndent(agents, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, a := range agents {
		fmt.Printf("%-20s %-9s %s\n", a.Name, a.Kind, a.Description)
	}
	return nil
}
