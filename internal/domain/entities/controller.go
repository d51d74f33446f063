package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is the contract between the CLI layer and the command layer.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
