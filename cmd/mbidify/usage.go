package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const usageLine = "usage: mbidify <input_names.txt> <output_mbids.txt>"

// usageError marks invocation mistakes that exit with status 2.
type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	if e.reason == "" {
		return usageLine
	}
	return e.reason + "\n" + usageLine
}

func exactPaths(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &usageError{}
	}
	return nil
}

func flagUsageError(cmd *cobra.Command, err error) error {
	return &usageError{reason: err.Error()}
}

// reservedNameError is returned when an input path collides with a command
// name, e.g. "mbidify config out.txt".
func reservedNameError(name string) error {
	return &usageError{reason: fmt.Sprintf("%q is a command name; pass an input file with that name as ./%s", name, name)}
}

func newHelpCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "help [command]",
		Short:       "Help about any command",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				return root.Help()
			}
			target, rest, err := root.Find(args)
			if err != nil || target == root || len(rest) > 0 {
				return reservedNameError(cmd.Name())
			}
			return target.Help()
		},
	}
}
