package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetFlag gets an expected bool flag, or exits if it was never registered.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetInt gets an expected int flag, or exits if it was never registered.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetIntSlice gets an expected []int flag, or exits if it was never
// registered.
func GetIntSlice(cmd *cobra.Command, flag string) []int {
	r, err := cmd.Flags().GetIntSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}
